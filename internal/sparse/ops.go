// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package sparse

import (
	"fmt"
	"math"
)

// ScaleColumns returns m right-multiplied by diag(weights): every entry in
// column j is multiplied by weights[j]. The weight vector length must equal
// Cols. Entries scaled to exactly zero stay stored; keeping the sparsity
// pattern lets repeated reweighting of the same matrix remain cheap and
// shape-stable.
func (m *Matrix) ScaleColumns(weights []float64) (*Matrix, error) {
	if len(weights) != m.cols {
		return nil, fmt.Errorf("scale columns: got %d weights for %d columns: %w",
			len(weights), m.cols, ErrDimensionMismatch)
	}
	for j, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("scale columns: weight %d: %w", j, ErrNotFinite)
		}
	}
	out := m.shallowStructClone()
	out.data = make([]float64, len(m.data))
	for k, v := range m.data {
		out.data[k] = v * weights[m.indices[k]]
	}
	return out, nil
}

// HCat concatenates m with the given matrices column-wise, in argument
// order. All operands must carry the identical row name sequence; aligning
// row sets (e.g. by outer join on item identity) is the caller's concern.
// Column names are concatenated as-is and must remain unique.
func (m *Matrix) HCat(others ...*Matrix) (*Matrix, error) {
	all := append([]*Matrix{m}, others...)
	totalCols, totalNNZ := 0, 0
	for _, o := range all {
		if o.rows != m.rows {
			return nil, fmt.Errorf("hcat: %d rows vs %d: %w", o.rows, m.rows, ErrDimensionMismatch)
		}
		for i, n := range o.rowNames {
			if n != m.rowNames[i] {
				return nil, fmt.Errorf("hcat: row %d: %q vs %q: %w", i, n, m.rowNames[i], ErrRowNamesDiffer)
			}
		}
		totalCols += o.cols
		totalNNZ += len(o.data)
	}

	colNames := make([]string, 0, totalCols)
	for _, o := range all {
		colNames = append(colNames, o.colNames...)
	}
	colIdx, err := indexNames(colNames)
	if err != nil {
		return nil, fmt.Errorf("hcat: %w", err)
	}

	out := &Matrix{
		rows:     m.rows,
		cols:     totalCols,
		indptr:   make([]int, m.rows+1),
		indices:  make([]int, 0, totalNNZ),
		data:     make([]float64, 0, totalNNZ),
		rowNames: append([]string(nil), m.rowNames...),
		colNames: colNames,
		rowIdx:   copyIndex(m.rowIdx),
		colIdx:   colIdx,
	}
	for i := 0; i < m.rows; i++ {
		out.indptr[i] = len(out.data)
		offset := 0
		for _, o := range all {
			for k := o.indptr[i]; k < o.indptr[i+1]; k++ {
				out.indices = append(out.indices, o.indices[k]+offset)
				out.data = append(out.data, o.data[k])
			}
			offset += o.cols
		}
	}
	out.indptr[m.rows] = len(out.data)
	return out, nil
}

// SliceColumns returns the sub-matrix of columns [start, end), keeping all
// rows and the corresponding column names.
func (m *Matrix) SliceColumns(start, end int) (*Matrix, error) {
	if start < 0 || end > m.cols || start > end {
		return nil, fmt.Errorf("slice columns [%d,%d): %w", start, end, ErrIndexOutOfRange)
	}
	out := &Matrix{
		rows:     m.rows,
		cols:     end - start,
		indptr:   make([]int, m.rows+1),
		rowNames: append([]string(nil), m.rowNames...),
		colNames: append([]string(nil), m.colNames[start:end]...),
		rowIdx:   copyIndex(m.rowIdx),
	}
	out.colIdx = make(map[string]int, out.cols)
	for j, n := range out.colNames {
		out.colIdx[n] = j
	}
	for i := 0; i < m.rows; i++ {
		out.indptr[i] = len(out.data)
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if c := m.indices[k]; c >= start && c < end {
				out.indices = append(out.indices, c-start)
				out.data = append(out.data, m.data[k])
			}
		}
	}
	out.indptr[m.rows] = len(out.data)
	return out, nil
}

// MulVec computes m·x for a dense vector x of length Cols, returning a dense
// vector of length Rows.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("mulvec: vector length %d for %d columns: %w",
			len(x), m.cols, ErrDimensionMismatch)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var s float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			s += m.data[k] * x[m.indices[k]]
		}
		out[i] = s
	}
	return out, nil
}

// DotRow computes the dot product of row i with a dense vector x of length
// Cols. Used where only a few rows of a product are needed.
func (m *Matrix) DotRow(i int, x []float64) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("dotrow %d: %w", i, ErrIndexOutOfRange)
	}
	if len(x) != m.cols {
		return 0, fmt.Errorf("dotrow: vector length %d for %d columns: %w",
			len(x), m.cols, ErrDimensionMismatch)
	}
	var s float64
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		s += m.data[k] * x[m.indices[k]]
	}
	return s, nil
}

// RowCombination computes hᵗ·m for a sparse row vector h given as
// coefficient-per-row, returning a dense vector of length Cols. Rows absent
// from coeffs contribute nothing. This is the projection of an item history
// into tag space.
func (m *Matrix) RowCombination(coeffs map[int]float64) ([]float64, error) {
	out := make([]float64, m.cols)
	for i, c := range coeffs {
		if i < 0 || i >= m.rows {
			return nil, fmt.Errorf("row combination: row %d: %w", i, ErrIndexOutOfRange)
		}
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out[m.indices[k]] += c * m.data[k]
		}
	}
	return out, nil
}

// SumRange returns the sum of all entries in columns [start, end).
func (m *Matrix) SumRange(start, end int) (float64, error) {
	if start < 0 || end > m.cols || start > end {
		return 0, fmt.Errorf("sum range [%d,%d): %w", start, end, ErrIndexOutOfRange)
	}
	var s float64
	for k, c := range m.indices {
		if c >= start && c < end {
			s += m.data[k]
		}
	}
	return s, nil
}

// MaxRange returns the maximum entry in columns [start, end), counting
// unstored cells as zero. A range with no stored entries therefore reports
// 0, and a range of purely negative entries reports 0 unless it is fully
// dense.
func (m *Matrix) MaxRange(start, end int) (float64, error) {
	if start < 0 || end > m.cols || start > end {
		return 0, fmt.Errorf("max range [%d,%d): %w", start, end, ErrIndexOutOfRange)
	}
	max, stored := 0.0, 0
	seen := false
	for k, c := range m.indices {
		if c < start || c >= end {
			continue
		}
		stored++
		if !seen || m.data[k] > max {
			max, seen = m.data[k], true
		}
	}
	if !seen {
		return 0, nil
	}
	if stored < m.rows*(end-start) && max < 0 {
		// At least one implicit zero cell dominates.
		return 0, nil
	}
	return max, nil
}

// shallowStructClone copies everything except data, which callers replace.
// Index slices and name slices are immutable by package convention and can
// be shared between derived matrices.
func (m *Matrix) shallowStructClone() *Matrix {
	return &Matrix{
		rows:     m.rows,
		cols:     m.cols,
		indptr:   m.indptr,
		indices:  m.indices,
		rowNames: m.rowNames,
		colNames: m.colNames,
		rowIdx:   m.rowIdx,
		colIdx:   m.colIdx,
	}
}

func copyIndex(idx map[string]int) map[string]int {
	out := make(map[string]int, len(idx))
	for k, v := range idx {
		out[k] = v
	}
	return out
}
