// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package sparse

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; wrapped variants carry positional context.
var (
	// ErrBadShape is returned when a matrix is constructed with a negative
	// dimension or with names whose count disagrees with the dimension.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrDuplicateName is returned when a row or column name appears twice.
	ErrDuplicateName = errors.New("sparse: duplicate dimension name")

	// ErrIndexOutOfRange is returned when a row or column index is outside
	// the matrix bounds.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch is returned when operand dimensions are
	// incompatible (vector length, row counts under concatenation).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrRowNamesDiffer is returned by HCat when operands carry different
	// row name sequences. Aligning row sets is the caller's concern.
	ErrRowNamesDiffer = errors.New("sparse: row names differ")

	// ErrNotFinite is returned when a NaN or ±Inf value is supplied where a
	// finite value is required.
	ErrNotFinite = errors.New("sparse: value is not finite")
)
