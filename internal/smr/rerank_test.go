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

func TestReorderByTagOverlap(t *testing.T) {
	r := genreRecommender(t)

	// Ranking with B before C; tag y overlaps only C, so C moves first.
	recs := []ScoredRow{
		{Score: 1, Index: 1, ID: "B"},
		{Score: 1, Index: 2, ID: "C"},
	}
	reordered, err := r.ReorderByTagOverlap(recs, []string{"y"})
	require.NoError(t, err)
	require.Len(t, reordered, 2)
	assert.Equal(t, "C", reordered[0].ID)
	assert.Equal(t, "B", reordered[1].ID)

	// Original slice is untouched.
	assert.Equal(t, "B", recs[0].ID)
}

func TestReorderByTagOverlap_ZeroOverlapIsNoOp(t *testing.T) {
	r := twoTypeRecommender(t)

	// B has studio s2 only; an indicator on s1 gives B zero overlap, and C
	// has no genre x. Pick tags overlapping neither listed row.
	recs := []ScoredRow{
		{Score: 2, Index: 1, ID: "B"}, // B: genre x, studio s2
	}
	reordered, err := r.ReorderByTagOverlap(recs, []string{"s1"})
	require.NoError(t, err)
	assert.Equal(t, recs, reordered, "all-zero overlap must not reorder")
}

func TestReorderByTagOverlap_StableAmongEqualOverlap(t *testing.T) {
	r := genreRecommender(t)

	// A and B both carry tag x: equal overlap keeps input order.
	recs := []ScoredRow{
		{Score: 3, Index: 0, ID: "A"},
		{Score: 2, Index: 1, ID: "B"},
		{Score: 1, Index: 2, ID: "C"},
	}
	reordered, err := r.ReorderByTagOverlap(recs, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(reordered))
}

func TestReorderByTagOverlap_Errors(t *testing.T) {
	r := genreRecommender(t)
	recs := []ScoredRow{{Score: 1, Index: 0, ID: "A"}}

	_, err := r.ReorderByTagOverlap(recs, nil)
	assert.ErrorIs(t, err, ErrTagsEmpty)

	_, err = r.ReorderByTagOverlap(recs, []string{"unknown-tag"})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestReorderByTagColumns(t *testing.T) {
	r := genreRecommender(t)
	recs := []ScoredRow{
		{Score: 1, Index: 1, ID: "B"},
		{Score: 1, Index: 2, ID: "C"},
	}

	j, ok := r.TagIndex("y")
	require.True(t, ok)
	byCol, err := r.ReorderByTagColumns(recs, []int{j})
	require.NoError(t, err)
	byName, err := r.ReorderByTagOverlap(recs, []string{"y"})
	require.NoError(t, err)
	assert.Equal(t, byName, byCol)

	_, err = r.ReorderByTagColumns(recs, []int{99})
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestTagTypeOf(t *testing.T) {
	r := twoTypeRecommender(t)

	tests := []struct {
		id   string
		want string
	}{
		{"x", "genre"},
		{"y", "genre"},
		{"s1", "studio"},
		{"A", "item"},   // item identifiers resolve to the item column name
		{"zzz", "None"}, // unresolvable is a sentinel, not an error
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.TagTypeOf(tt.id), "TagTypeOf(%q)", tt.id)
	}
}

func TestTagTypeOfColumn(t *testing.T) {
	r := twoTypeRecommender(t)

	genre, _ := r.Range("genre")
	studio, _ := r.Range("studio")
	assert.Equal(t, "genre", r.TagTypeOfColumn(genre.Start))
	assert.Equal(t, "studio", r.TagTypeOfColumn(studio.End-1))
	assert.Equal(t, TagTypeNone, r.TagTypeOfColumn(-1))
	assert.Equal(t, TagTypeNone, r.TagTypeOfColumn(r.NumTags()))
}

func ids(rows []ScoredRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
