// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"fmt"
	"sort"
)

// ReorderByTagOverlap re-ranks an existing recommendation list by each
// item's overlap with the given tags: a 0/1 indicator vector over tag
// columns is dotted with every recommended row of the weighted matrix, and
// the list is stably re-sorted by that secondary score, descending. When no
// recommended row overlaps any given tag, the list is returned unchanged;
// an all-zero overlap must not shuffle the input. The input slice is never
// modified.
func (r *Recommender) ReorderByTagOverlap(recs []ScoredRow, tags []string) ([]ScoredRow, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("reorder: %w", ErrTagsEmpty)
	}
	cols := make([]int, len(tags))
	for k, tag := range tags {
		j, ok := r.m.ColIndex(tag)
		if !ok {
			return nil, fmt.Errorf("reorder: %w: %q", ErrUnknownTag, tag)
		}
		cols[k] = j
	}
	return r.reorderByColumns(recs, cols)
}

// ReorderByTagColumns is ReorderByTagOverlap with the tags given as raw
// column indices.
func (r *Recommender) ReorderByTagColumns(recs []ScoredRow, cols []int) ([]ScoredRow, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("reorder: %w", ErrTagsEmpty)
	}
	for _, j := range cols {
		if j < 0 || j >= r.m.Cols() {
			return nil, fmt.Errorf("reorder: column %d: %w", j, ErrUnknownTag)
		}
	}
	return r.reorderByColumns(recs, cols)
}

func (r *Recommender) reorderByColumns(recs []ScoredRow, cols []int) ([]ScoredRow, error) {
	indicator := make([]float64, r.m.Cols())
	for _, j := range cols {
		indicator[j] = 1
	}

	overlap := make([]float64, len(recs))
	total := 0.0
	for k, rec := range recs {
		v, err := r.m.DotRow(rec.Index, indicator)
		if err != nil {
			return nil, fmt.Errorf("reorder: recommendation %d: %w", k, err)
		}
		overlap[k] = v
		total += v
	}

	out := append([]ScoredRow(nil), recs...)
	if total <= 0 {
		return out, nil
	}
	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return overlap[order[a]] > overlap[order[b]]
	})
	sorted := make([]ScoredRow, len(out))
	for k, i := range order {
		sorted[k] = out[i]
	}
	return sorted, nil
}

// TagTypeOf resolves an identifier to its owning tag type. A tag identifier
// resolves via the column partition; a known item identifier resolves to
// the item column name; anything else resolves to TagTypeNone.
func (r *Recommender) TagTypeOf(id string) string {
	if j, ok := r.m.ColIndex(id); ok {
		return r.TagTypeOfColumn(j)
	}
	if _, ok := r.m.RowIndex(id); ok {
		return r.itemColumn
	}
	return TagTypeNone
}

// TagTypeOfColumn resolves a raw column index to its owning tag type, or
// TagTypeNone when the index is outside the column span.
func (r *Recommender) TagTypeOfColumn(j int) string {
	for _, tt := range r.tagTypes {
		rng := r.ranges[tt]
		if j >= rng.Start && j < rng.End {
			return tt
		}
	}
	return TagTypeNone
}
