// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense exports the matrix as a gonum *mat.Dense. Names are not carried;
// positions are preserved. Intended for interop with gonum-based numeric
// code and for cross-checking sparse results.
func (m *Matrix) Dense() *mat.Dense {
	out := mat.NewDense(max(m.rows, 1), max(m.cols, 1), nil)
	if m.rows == 0 || m.cols == 0 {
		return out
	}
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out.Set(i, m.indices[k], m.data[k])
		}
	}
	return out
}

// FromDense builds a named sparse matrix from a gonum matrix, dropping
// exact zeros. The name counts must match the gonum matrix shape.
func FromDense(rowNames, colNames []string, d mat.Matrix) (*Matrix, error) {
	r, c := d.Dims()
	if r != len(rowNames) || c != len(colNames) {
		return nil, fmt.Errorf("from dense: shape %dx%d vs %d/%d names: %w",
			r, c, len(rowNames), len(colNames), ErrBadShape)
	}
	var entries []Triplet
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			if v == 0 {
				continue
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("from dense (%d,%d): %w", i, j, ErrNotFinite)
			}
			entries = append(entries, Triplet{Row: i, Col: j, Val: v})
		}
	}
	return NewFromTriplets(rowNames, colNames, entries)
}
