// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"fmt"

	"github.com/mithua/smr/internal/sparse"
)

// ItemTagMatrix aggregates rows by the (itemColumn value, tagColumn value)
// pair, counting occurrences, and materializes a sparse matrix whose rows
// are the distinct item values and whose columns are the distinct tag
// values observed for this tag type. Rows and columns appear in first
// observation order, which makes the mapping deterministic for a given
// input. Records with an empty item or tag value are skipped.
func ItemTagMatrix(rows []Row, itemColumn, tagColumn string) (*sparse.Matrix, error) {
	items := collectDistinct(rows, itemColumn)
	return itemTagMatrixOver(rows, itemColumn, tagColumn, items)
}

// itemTagMatrixOver builds one tag-type block over a fixed item universe,
// so blocks for different tag types share an aligned row set. Items with no
// observation for this tag type simply hold zero rows.
func itemTagMatrixOver(rows []Row, itemColumn, tagColumn string, items []string) (*sparse.Matrix, error) {
	itemPos := make(map[string]int, len(items))
	for i, it := range items {
		itemPos[it] = i
	}

	var tags []string
	tagPos := make(map[string]int)
	var entries []sparse.Triplet

	for _, row := range rows {
		item, tag := row[itemColumn], row[tagColumn]
		if item == "" || tag == "" {
			continue
		}
		i, ok := itemPos[item]
		if !ok {
			continue
		}
		j, ok := tagPos[tag]
		if !ok {
			j = len(tags)
			tagPos[tag] = j
			tags = append(tags, tag)
		}
		entries = append(entries, sparse.Triplet{Row: i, Col: j, Val: 1})
	}

	m, err := sparse.NewFromTriplets(items, tags, entries)
	if err != nil {
		return nil, fmt.Errorf("item-tag matrix for %q: %w", tagColumn, err)
	}
	return m, nil
}

// FromTransactions builds a Recommender from a transaction table. Each row
// is one observation; tagTypes names the tag columns in the order their
// blocks are concatenated; itemColumn names the item identity column. Row
// sets of the per-type blocks are reconciled by union over the whole table,
// missing entries filled with zero.
func FromTransactions(rows []Row, tagTypes []string, itemColumn string) (*Recommender, error) {
	if len(tagTypes) == 0 {
		return nil, ErrTagTypesEmpty
	}
	for _, tt := range tagTypes {
		if tt == itemColumn {
			return nil, fmt.Errorf("%w: %q", ErrTagTypeCollision, tt)
		}
	}

	items := collectDistinct(rows, itemColumn)
	mats := make([]*sparse.Matrix, 0, len(tagTypes))
	for _, tt := range tagTypes {
		m, err := itemTagMatrixOver(rows, itemColumn, tt, items)
		if err != nil {
			return nil, err
		}
		mats = append(mats, m)
	}
	return FromMatrices(mats, tagTypes, itemColumn)
}

// FromMatrices builds a Recommender from pre-built per-tag-type sparse
// matrices. The matrices are concatenated column-wise in tagTypes order;
// their row sets must already align (aligning, e.g. by outer join on item
// identity, is the caller's concern). Tag identifiers must be globally
// unique across tag types. The weighted and unweighted matrices both start
// as the concatenation.
func FromMatrices(mats []*sparse.Matrix, tagTypes []string, itemColumn string) (*Recommender, error) {
	if len(tagTypes) == 0 {
		return nil, ErrTagTypesEmpty
	}
	if len(mats) != len(tagTypes) {
		return nil, fmt.Errorf("%w: %d matrices for %d tag types",
			ErrLengthMismatch, len(mats), len(tagTypes))
	}
	seen := make(map[string]struct{}, len(tagTypes))
	for _, tt := range tagTypes {
		if tt == itemColumn {
			return nil, fmt.Errorf("%w: %q", ErrTagTypeCollision, tt)
		}
		if _, dup := seen[tt]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTagType, tt)
		}
		seen[tt] = struct{}{}
	}

	cat, err := mats[0].HCat(mats[1:]...)
	if err != nil {
		return nil, fmt.Errorf("concatenating tag type blocks: %w", err)
	}

	ranges := make(map[string]TagTypeRange, len(tagTypes))
	start := 0
	for i, tt := range tagTypes {
		end := start + mats[i].Cols()
		ranges[tt] = TagTypeRange{Start: start, End: end}
		start = end
	}

	return &Recommender{
		m:          cat,
		m01:        cat,
		tagTypes:   append([]string(nil), tagTypes...),
		ranges:     ranges,
		itemColumn: itemColumn,
	}, nil
}

// collectDistinct returns the distinct non-empty values of one column in
// first appearance order.
func collectDistinct(rows []Row, column string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := row[column]
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
