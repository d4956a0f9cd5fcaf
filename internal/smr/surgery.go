// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"fmt"

	"github.com/mithua/smr/internal/sparse"
)

// RemoveTagTypes returns a Recommender without the named tag types'
// column blocks. The retained types keep their original order with ranges
// recomputed, and their significance factors, measured on the receiver
// before removal, are reapplied as tag-type weights on the rebuilt
// unweighted matrix, so removing noise tag types does not silently alter
// the relative influence of the remaining ones. Names in toRemove that are
// not tag types of the receiver are ignored. Removing every tag type is an
// error. The receiver is not modified.
func (r *Recommender) RemoveTagTypes(toRemove []string) (*Recommender, error) {
	drop := make(map[string]struct{}, len(toRemove))
	for _, tt := range toRemove {
		drop[tt] = struct{}{}
	}

	var retained []string
	for _, tt := range r.tagTypes {
		if _, gone := drop[tt]; !gone {
			retained = append(retained, tt)
		}
	}
	if len(retained) == 0 {
		return nil, fmt.Errorf("remove tag types: %w", ErrTagTypesEmpty)
	}

	// Factors are measured before removal so the rebuilt matrix carries the
	// same relative weighting the retained blocks had.
	factors := r.TagTypeSignificanceFactors()

	blocks := make([]*sparse.Matrix, 0, len(retained))
	for _, tt := range retained {
		rng := r.ranges[tt]
		b, err := r.m01.SliceColumns(rng.Start, rng.End)
		if err != nil {
			return nil, fmt.Errorf("remove tag types: block %q: %w", tt, err)
		}
		blocks = append(blocks, b)
	}
	m01, err := blocks[0].HCat(blocks[1:]...)
	if err != nil {
		return nil, fmt.Errorf("remove tag types: %w", err)
	}

	ranges := make(map[string]TagTypeRange, len(retained))
	start := 0
	for i, tt := range retained {
		end := start + blocks[i].Cols()
		ranges[tt] = TagTypeRange{Start: start, End: end}
		start = end
	}

	out := &Recommender{
		m:          m01,
		m01:        m01,
		tagTypes:   retained,
		ranges:     ranges,
		itemColumn: r.itemColumn,
	}

	perType := make([]float64, len(retained))
	for i, tt := range retained {
		perType[i] = factors[tt]
	}
	reweighted, err := out.ApplyTagTypeWeights(perType)
	if err != nil {
		return nil, fmt.Errorf("remove tag types: %w", err)
	}
	return reweighted, nil
}
