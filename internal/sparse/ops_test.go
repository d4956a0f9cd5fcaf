// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package sparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	return mustMatrix(t,
		[]string{"A", "B", "C"},
		[]string{"x", "y", "z"},
		[]Triplet{
			{0, 0, 1}, {0, 1, 2},
			{1, 0, 3}, {1, 2, 4},
			{2, 1, 5},
		})
}

func TestScaleColumns(t *testing.T) {
	m := testMatrix(t)

	scaled, err := m.ScaleColumns([]float64{2, 0.5, 1})
	require.NoError(t, err)

	want := [][]float64{{2, 1, 0}, {6, 0, 4}, {0, 2.5, 0}}
	for i := range want {
		for j := range want[i] {
			got, err := scaled.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], got, "At(%d,%d)", i, j)
		}
	}

	// The input matrix is untouched.
	orig, _ := m.At(0, 0)
	assert.Equal(t, 1.0, orig)

	_, err = m.ScaleColumns([]float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScaleColumns_KeepsPattern(t *testing.T) {
	m := testMatrix(t)
	scaled, err := m.ScaleColumns([]float64{0, 0, 0})
	require.NoError(t, err)
	// Zero weights zero the values but keep the stored pattern, so a later
	// rescale from the original is shape-identical.
	assert.Equal(t, m.NNZ(), scaled.NNZ())
	assert.Equal(t, 0.0, scaled.Sum())
}

func TestHCat(t *testing.T) {
	left := mustMatrix(t, []string{"A", "B"}, []string{"x", "y"},
		[]Triplet{{0, 0, 1}, {1, 1, 2}})
	right := mustMatrix(t, []string{"A", "B"}, []string{"u"},
		[]Triplet{{0, 0, 3}})

	cat, err := left.HCat(right)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Rows())
	assert.Equal(t, 3, cat.Cols())
	assert.Equal(t, []string{"x", "y", "u"}, cat.ColNames())

	v, err := cat.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	j, ok := cat.ColIndex("u")
	require.True(t, ok)
	assert.Equal(t, 2, j)
}

func TestHCat_Errors(t *testing.T) {
	left := mustMatrix(t, []string{"A", "B"}, []string{"x"}, nil)

	shorter := mustMatrix(t, []string{"A"}, []string{"y"}, nil)
	_, err := left.HCat(shorter)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	renamed := mustMatrix(t, []string{"A", "Z"}, []string{"y"}, nil)
	_, err = left.HCat(renamed)
	assert.ErrorIs(t, err, ErrRowNamesDiffer)

	clashing := mustMatrix(t, []string{"A", "B"}, []string{"x"}, nil)
	_, err = left.HCat(clashing)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSliceColumns(t *testing.T) {
	m := testMatrix(t)

	sub, err := m.SliceColumns(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Rows())
	assert.Equal(t, 2, sub.Cols())
	assert.Equal(t, []string{"y", "z"}, sub.ColNames())

	v, err := sub.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = m.SliceColumns(2, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMulVec(t *testing.T) {
	m := testMatrix(t)

	got, err := m.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 5}, got)

	_, err = m.MulVec([]float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRowCombination(t *testing.T) {
	m := testMatrix(t)

	// 2·row(A) + 1·row(C)
	got, err := m.RowCombination(map[int]float64{0: 2, 2: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 9, 0}, got)

	_, err = m.RowCombination(map[int]float64{5: 1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSumAndMaxRange(t *testing.T) {
	m := testMatrix(t)

	s, err := m.SumRange(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 11.0, s)

	mx, err := m.MaxRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, mx)

	// Empty span.
	s, err = m.SumRange(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

func TestMaxRange_ImplicitZeros(t *testing.T) {
	m := mustMatrix(t, []string{"A", "B"}, []string{"x"},
		[]Triplet{{0, 0, -2}})
	// Row B holds an implicit zero in column x, which dominates -2.
	mx, err := m.MaxRange(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mx)
}

func TestDenseRoundTrip(t *testing.T) {
	m := testMatrix(t)

	d := m.Dense()
	r, c := d.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	back, err := FromDense(m.RowNames(), m.ColNames(), d)
	require.NoError(t, err)
	assert.Equal(t, m.NNZ(), back.NNZ())
	assert.Equal(t, m.Sum(), back.Sum())
}

// TestMulVec_AgainstGonum cross-checks the sparse product against gonum's
// dense arithmetic on the same data.
func TestMulVec_AgainstGonum(t *testing.T) {
	m := testMatrix(t)
	x := []float64{0.5, -1, 2}

	got, err := m.MulVec(x)
	require.NoError(t, err)

	var want mat.VecDense
	want.MulVec(m.Dense(), mat.NewVecDense(len(x), x))
	for i := range got {
		assert.InDelta(t, want.AtVec(i), got[i], 1e-12, "row %d", i)
	}
}

func TestErrorsAreSentinels(t *testing.T) {
	m := testMatrix(t)
	_, err := m.At(9, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}
