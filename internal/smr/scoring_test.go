// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecommend_WorkedExample follows the canonical scenario: history is
// item A with rating 1, so the profile is [1,1] and the scores M·[1,1]ᵗ are
// [2,1,1]. With history removal and n=2, B and C remain tied at 1 in
// original row order and A is excluded.
func TestRecommend_WorkedExample(t *testing.T) {
	r := genreRecommender(t)

	recs, err := r.Recommend([]string{"A"}, []float64{1}, 2, true)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "B", recs[0].ID)
	assert.Equal(t, 1.0, recs[0].Score)
	assert.Equal(t, "C", recs[1].ID)
	assert.Equal(t, 1.0, recs[1].Score)

	// Without removal, A leads at score 2.
	recs, err = r.Recommend([]string{"A"}, []float64{1}, 3, false)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, ScoredRow{Score: 2, Index: 0, ID: "A"}, recs[0])
}

func TestRecommend_NeverReturnsHistory(t *testing.T) {
	r := twoTypeRecommender(t)

	histories := [][]string{
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
		{"C", "A"},
	}
	for _, hist := range histories {
		recs, err := r.Recommend(hist, []float64{1, 2, 3}, r.NumItems(), true)
		require.NoError(t, err)
		seen := make(map[string]struct{}, len(hist))
		for _, h := range hist {
			seen[h] = struct{}{}
		}
		for _, rec := range recs {
			if _, inHist := seen[rec.ID]; inHist {
				t.Errorf("history %v: item %q recommended back", hist, rec.ID)
			}
		}
	}
}

func TestRecommend_SortedDescendingStableTies(t *testing.T) {
	r := genreRecommender(t)

	recs, err := r.Recommend([]string{"A"}, []float64{1}, 3, false)
	require.NoError(t, err)
	for k := 1; k < len(recs); k++ {
		if recs[k].Score > recs[k-1].Score {
			t.Fatalf("scores not descending at position %d: %v then %v",
				k, recs[k-1].Score, recs[k].Score)
		}
		if recs[k].Score == recs[k-1].Score && recs[k].Index < recs[k-1].Index {
			t.Fatalf("tie at score %v broken against row order: index %d before %d",
				recs[k].Score, recs[k-1].Index, recs[k].Index)
		}
	}
}

func TestRecommend_MoreThanAvailable(t *testing.T) {
	r := genreRecommender(t)

	recs, err := r.Recommend([]string{"A"}, []float64{1}, 100, true)
	require.NoError(t, err)
	assert.Len(t, recs, 2, "all available items, never an error")

	recs, err = r.Recommend([]string{"A"}, []float64{1}, 0, true)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommend_RatingsRecycled(t *testing.T) {
	r := twoTypeRecommender(t)

	// Single rating recycles to the whole history; the two calls agree.
	short, err := r.Recommend([]string{"A", "B"}, []float64{2}, 3, false)
	require.NoError(t, err)
	full, err := r.Recommend([]string{"A", "B"}, []float64{2, 2}, 3, false)
	require.NoError(t, err)
	assert.Equal(t, full, short)
}

func TestRecommend_Errors(t *testing.T) {
	r := genreRecommender(t)

	_, err := r.Recommend([]string{"nope"}, []float64{1}, 2, true)
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = r.Recommend([]string{"A"}, nil, 2, true)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRecommendByRows(t *testing.T) {
	r := genreRecommender(t)

	byID, err := r.Recommend([]string{"A"}, []float64{1}, 2, true)
	require.NoError(t, err)
	byRow, err := r.RecommendByRows([]int{0}, []float64{1}, 2, true)
	require.NoError(t, err)
	assert.Equal(t, byID, byRow)

	_, err = r.RecommendByRows([]int{9}, []float64{1}, 2, true)
	assert.ErrorIs(t, err, ErrRowOutOfRange)
}

func TestProfileVector(t *testing.T) {
	r := genreRecommender(t)

	p, err := r.ProfileVector([]string{"A"}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, p)

	// Duplicated history items accumulate.
	p, err = r.ProfileVector([]string{"A", "A"}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3}, p)

	_, err = r.ProfileVector([]string{"missing"}, []float64{1})
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestRecommendByProfileVector(t *testing.T) {
	r := genreRecommender(t)

	// The profile of A fed back in reproduces the history scoring with no
	// removal step.
	recs, err := r.RecommendByProfileVector([]float64{1, 1}, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "A", recs[0].ID)
	assert.Equal(t, 2.0, recs[0].Score)

	_, err = r.RecommendByProfileVector([]float64{1}, 3)
	assert.ErrorIs(t, err, ErrProfileLength)
}

func TestRecommendByProfile(t *testing.T) {
	r := genreRecommender(t)

	viaPairs, err := r.RecommendByProfile([]string{"x", "y"}, []float64{1, 1}, 3)
	require.NoError(t, err)
	viaVector, err := r.RecommendByProfileVector([]float64{1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, viaVector, viaPairs)

	_, err = r.RecommendByProfile([]string{"nope"}, []float64{1}, 3)
	assert.ErrorIs(t, err, ErrUnknownTag)

	_, err = r.RecommendByProfile(nil, []float64{1}, 3)
	assert.ErrorIs(t, err, ErrTagsEmpty)
}

// TestRecommend_WeightedMatrixDrivesScores checks scoring runs over the
// current weighted matrix, not the raw counts.
func TestRecommend_WeightedMatrixDrivesScores(t *testing.T) {
	r := genreRecommender(t)
	weighted, err := r.ApplyTagWeights([]float64{1, 0})
	require.NoError(t, err)

	// Tag y is zeroed: C (only tag y) scores 0 against a history on A.
	recs, err := weighted.Recommend([]string{"A"}, []float64{1}, 3, false)
	require.NoError(t, err)
	for _, rec := range recs {
		if rec.ID == "C" {
			assert.Equal(t, 0.0, rec.Score)
		}
	}
}
