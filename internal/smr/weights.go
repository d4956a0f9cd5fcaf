// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import (
	"fmt"

	"github.com/mithua/smr/internal/sparse"
)

// cycleTo adjusts a vector to the target length: shorter vectors repeat
// cyclically, longer ones are truncated. This mirrors R-style vector
// recycling and is the single helper applied wherever weights or ratings
// may come in mismatched lengths. An empty vector cannot be recycled to a
// positive length.
func cycleTo(xs []float64, n int) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: cannot recycle an empty vector to length %d", ErrLengthMismatch, n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xs[i%len(xs)]
	}
	return out, nil
}

// ApplyTagWeights returns a Recommender whose weighted matrix is the
// unweighted matrix right-multiplied by diag(weights), one scalar per tag
// column. The weight vector is recycled or truncated to the column count.
// The unweighted matrix is unchanged, so repeated weighting composes
// against the original counts, not against prior weights.
func (r *Recommender) ApplyTagWeights(weights []float64) (*Recommender, error) {
	w, err := cycleTo(weights, r.m01.Cols())
	if err != nil {
		return nil, fmt.Errorf("apply tag weights: %w", err)
	}
	scaled, err := r.m01.ScaleColumns(w)
	if err != nil {
		return nil, fmt.Errorf("apply tag weights: %w", err)
	}
	return r.withMatrix(scaled), nil
}

// ApplyTagTypeWeights applies one scalar per tag type, expanding each to a
// per-column vector over the type's range and delegating to ApplyTagWeights.
// The per-type vector is recycled or truncated to the number of tag types.
func (r *Recommender) ApplyTagTypeWeights(weights []float64) (*Recommender, error) {
	perType, err := cycleTo(weights, len(r.tagTypes))
	if err != nil {
		return nil, fmt.Errorf("apply tag type weights: %w", err)
	}
	return r.ApplyTagWeights(r.expandTypeWeights(perType))
}

// expandTypeWeights turns one scalar per tag type (in tagTypes order) into
// a per-column weight vector over the full column span.
func (r *Recommender) expandTypeWeights(perType []float64) []float64 {
	out := make([]float64, r.m01.Cols())
	for i, tt := range r.tagTypes {
		rng := r.ranges[tt]
		for j := rng.Start; j < rng.End; j++ {
			out[j] = perType[i]
		}
	}
	return out
}

// TagTypeSignificanceFactors reports, per tag type, the ratio of the
// current weighted mass to the original raw mass of its column block. An
// empty tag type (zero raw mass) reports factor 1 rather than dividing by
// zero. Read-only introspection; the Recommender is not changed.
func (r *Recommender) TagTypeSignificanceFactors() map[string]float64 {
	out := make(map[string]float64, len(r.tagTypes))
	for _, tt := range r.tagTypes {
		rng := r.ranges[tt]
		num, _ := r.m.SumRange(rng.Start, rng.End)
		den, _ := r.m01.SumRange(rng.Start, rng.End)
		if den == 0 {
			out[tt] = 1
			continue
		}
		out[tt] = num / den
	}
	return out
}

// NormalizeByMaxEntry brings every tag-type block's largest entry in the
// current weighted matrix to exactly 1, by scaling each block by the
// reciprocal of its maximum. Blocks whose maximum is zero are left at
// weight 1. The reciprocal scaling is applied to the current weighted
// matrix, so the result's block maxima are 1 regardless of prior
// weighting; the unweighted matrix is unchanged as always.
func (r *Recommender) NormalizeByMaxEntry() (*Recommender, error) {
	perType := make([]float64, len(r.tagTypes))
	for i, tt := range r.tagTypes {
		rng := r.ranges[tt]
		max, err := r.m.MaxRange(rng.Start, rng.End)
		if err != nil {
			return nil, fmt.Errorf("normalize by max entry: %w", err)
		}
		if max == 0 {
			max = 1
		}
		perType[i] = 1 / max
	}
	scaled, err := r.m.ScaleColumns(r.expandTypeWeights(perType))
	if err != nil {
		return nil, fmt.Errorf("normalize by max entry: %w", err)
	}
	return r.withMatrix(scaled), nil
}

// withMatrix derives a Recommender sharing everything but the weighted
// matrix.
func (r *Recommender) withMatrix(m *sparse.Matrix) *Recommender {
	return &Recommender{
		m:          m,
		m01:        r.m01,
		tagTypes:   r.tagTypes,
		ranges:     r.ranges,
		itemColumn: r.itemColumn,
	}
}
