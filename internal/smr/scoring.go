// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"fmt"
	"sort"
)

// The scoring identity: given a sparse history vector h over items, the
// profile is p = hᵗM and the item scores are s = M·p. Projecting into tag
// space and back is what lets tag co-occurrence drive the recommendation.

// Recommend scores all items against an item history and returns the top n
// as (score, row index, item identifier) rows, ranked by score descending.
// Equal scores keep their original row order (stable ranking). Ratings are
// recycled or truncated to the history length. When removeHistory is true,
// history items are dropped from the ranking before truncation. Asking for
// more recommendations than exist returns all available; it is not an
// error.
func (r *Recommender) Recommend(items []string, ratings []float64, n int, removeHistory bool) ([]ScoredRow, error) {
	rows, err := r.resolveItems(items)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	return r.recommendRows(rows, ratings, n, removeHistory)
}

// RecommendByRows is Recommend with the history given as raw row indices
// instead of item identifiers.
func (r *Recommender) RecommendByRows(rows []int, ratings []float64, n int, removeHistory bool) ([]ScoredRow, error) {
	for _, i := range rows {
		if i < 0 || i >= r.m.Rows() {
			return nil, fmt.Errorf("recommend: row %d: %w", i, ErrRowOutOfRange)
		}
	}
	return r.recommendRows(rows, ratings, n, removeHistory)
}

func (r *Recommender) recommendRows(rows []int, ratings []float64, n int, removeHistory bool) ([]ScoredRow, error) {
	h, err := historyVector(rows, ratings)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	profile, err := r.m.RowCombination(h)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	scores, err := r.m.MulVec(profile)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	var exclude map[int]struct{}
	if removeHistory {
		exclude = make(map[int]struct{}, len(rows))
		for _, i := range rows {
			exclude[i] = struct{}{}
		}
	}
	return r.rankItems(scores, n, exclude), nil
}

// ProfileVector projects an item history into tag space and returns the
// profile p = hᵗM, one value per tag column. Ratings are recycled or
// truncated to the history length.
func (r *Recommender) ProfileVector(items []string, ratings []float64) ([]float64, error) {
	rows, err := r.resolveItems(items)
	if err != nil {
		return nil, fmt.Errorf("profile vector: %w", err)
	}
	h, err := historyVector(rows, ratings)
	if err != nil {
		return nil, fmt.Errorf("profile vector: %w", err)
	}
	p, err := r.m.RowCombination(h)
	if err != nil {
		return nil, fmt.Errorf("profile vector: %w", err)
	}
	return p, nil
}

// RecommendByProfileVector scores all items against an already-computed
// tag-space profile and returns the top n, ranked stably by score
// descending. There is no history-removal step; profiles are not items.
// The profile length must equal the number of tag columns.
func (r *Recommender) RecommendByProfileVector(profile []float64, n int) ([]ScoredRow, error) {
	if len(profile) != r.m.Cols() {
		return nil, fmt.Errorf("recommend by profile vector: length %d for %d tags: %w",
			len(profile), r.m.Cols(), ErrProfileLength)
	}
	scores, err := r.m.MulVec(profile)
	if err != nil {
		return nil, fmt.Errorf("recommend by profile vector: %w", err)
	}
	return r.rankItems(scores, n, nil), nil
}

// RecommendByProfile builds the profile vector from (tag, rating) pairs and
// delegates to RecommendByProfileVector. Tags resolve via the tag index;
// ratings are recycled or truncated to the tag count. Duplicate tags
// accumulate.
func (r *Recommender) RecommendByProfile(tags []string, ratings []float64, n int) ([]ScoredRow, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("recommend by profile: %w", ErrTagsEmpty)
	}
	rs, err := cycleTo(ratings, len(tags))
	if err != nil {
		return nil, fmt.Errorf("recommend by profile: %w", err)
	}
	profile := make([]float64, r.m.Cols())
	for i, tag := range tags {
		j, ok := r.m.ColIndex(tag)
		if !ok {
			return nil, fmt.Errorf("recommend by profile: %w: %q", ErrUnknownTag, tag)
		}
		profile[j] += rs[i]
	}
	return r.RecommendByProfileVector(profile, n)
}

// resolveItems maps item identifiers to row indices, failing on the first
// identifier that does not resolve.
func (r *Recommender) resolveItems(items []string) ([]int, error) {
	rows := make([]int, len(items))
	for k, id := range items {
		i, ok := r.m.RowIndex(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
		}
		rows[k] = i
	}
	return rows, nil
}

// historyVector builds the sparse history vector h from parallel rows and
// ratings, recycling ratings to the history length. Repeated rows
// accumulate their ratings.
func historyVector(rows []int, ratings []float64) (map[int]float64, error) {
	rs, err := cycleTo(ratings, len(rows))
	if err != nil {
		return nil, err
	}
	h := make(map[int]float64, len(rows))
	for k, i := range rows {
		h[i] += rs[k]
	}
	return h, nil
}

// rankItems orders all items by score descending with stable ties, drops
// excluded rows, and truncates to n. n larger than what remains yields all
// remaining; n <= 0 yields none.
func (r *Recommender) rankItems(scores []float64, n int, exclude map[int]struct{}) []ScoredRow {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if n < 0 {
		n = 0
	}
	out := make([]ScoredRow, 0, min(n, len(order)))
	for _, i := range order {
		if len(out) == n {
			break
		}
		if _, skip := exclude[i]; skip {
			continue
		}
		out = append(out, ScoredRow{Score: scores[i], Index: i, ID: r.m.RowName(i)})
	}
	return out
}
