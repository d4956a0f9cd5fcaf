// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package sparse

import (
	"fmt"
	"math"
)

// Matrix is an immutable sparse matrix with named rows and columns, stored
// in CSR form. The zero value is not usable; construct via NewFromTriplets
// or one of the derivation operations.
type Matrix struct {
	rows, cols int

	// CSR storage: for row i, the non-zeros live in
	// indices[indptr[i]:indptr[i+1]] / data[indptr[i]:indptr[i+1]],
	// with column indices strictly increasing within a row.
	indptr  []int
	indices []int
	data    []float64

	rowNames []string
	colNames []string
	rowIdx   map[string]int
	colIdx   map[string]int
}

// Triplet is one (row, column, value) entry used during construction.
// Duplicate (row, column) pairs are summed.
type Triplet struct {
	Row int
	Col int
	Val float64
}

// NewFromTriplets builds a matrix of shape len(rowNames)×len(colNames) from
// the given entries. Duplicate coordinates are summed; exact zeros (including
// sums that cancel to zero) are dropped from storage. Names must be unique
// within their dimension.
func NewFromTriplets(rowNames, colNames []string, entries []Triplet) (*Matrix, error) {
	rowIdx, err := indexNames(rowNames)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	colIdx, err := indexNames(colNames)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	nr, nc := len(rowNames), len(colNames)

	// Accumulate per row so duplicates sum and columns come out sorted.
	perRow := make([]map[int]float64, nr)
	for _, t := range entries {
		if t.Row < 0 || t.Row >= nr || t.Col < 0 || t.Col >= nc {
			return nil, fmt.Errorf("entry (%d,%d): %w", t.Row, t.Col, ErrIndexOutOfRange)
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, fmt.Errorf("entry (%d,%d): %w", t.Row, t.Col, ErrNotFinite)
		}
		if perRow[t.Row] == nil {
			perRow[t.Row] = make(map[int]float64)
		}
		perRow[t.Row][t.Col] += t.Val
	}

	m := &Matrix{
		rows:     nr,
		cols:     nc,
		indptr:   make([]int, nr+1),
		rowNames: append([]string(nil), rowNames...),
		colNames: append([]string(nil), colNames...),
		rowIdx:   rowIdx,
		colIdx:   colIdx,
	}
	for i := 0; i < nr; i++ {
		m.indptr[i] = len(m.data)
		row := perRow[i]
		if len(row) == 0 {
			continue
		}
		cs := make([]int, 0, len(row))
		for c := range row {
			cs = append(cs, c)
		}
		sortInts(cs)
		for _, c := range cs {
			if v := row[c]; v != 0 {
				m.indices = append(m.indices, c)
				m.data = append(m.data, v)
			}
		}
	}
	m.indptr[nr] = len(m.data)
	return m, nil
}

func indexNames(names []string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := idx[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, n)
		}
		idx[n] = i
	}
	return idx, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero entries.
func (m *Matrix) NNZ() int { return len(m.data) }

// RowNames returns a copy of the row name sequence.
func (m *Matrix) RowNames() []string { return append([]string(nil), m.rowNames...) }

// ColNames returns a copy of the column name sequence.
func (m *Matrix) ColNames() []string { return append([]string(nil), m.colNames...) }

// RowName returns the name of row i. Panics only on programmer error
// (index produced by this package is always valid).
func (m *Matrix) RowName(i int) string { return m.rowNames[i] }

// ColName returns the name of column j.
func (m *Matrix) ColName(j int) string { return m.colNames[j] }

// RowIndex resolves a row name to its position.
func (m *Matrix) RowIndex(name string) (int, bool) {
	i, ok := m.rowIdx[name]
	return i, ok
}

// ColIndex resolves a column name to its position.
func (m *Matrix) ColIndex(name string) (int, bool) {
	j, ok := m.colIdx[name]
	return j, ok
}

// At returns the entry at (i, j), zero when no entry is stored.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("at (%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	for k := lo; k < hi; k++ {
		switch {
		case m.indices[k] == j:
			return m.data[k], nil
		case m.indices[k] > j:
			return 0, nil
		}
	}
	return 0, nil
}

// Sum returns the sum of all entries.
func (m *Matrix) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}
	return s
}

// sortInts sorts a small int slice in place. Insertion sort keeps row
// finalization allocation-free; rows are short in tag-type blocks.
func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
