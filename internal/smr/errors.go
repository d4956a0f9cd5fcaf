// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import "errors"

// Sentinel errors. Each condition fails fast at the boundary of the
// operation that detects it; there is no partial execution path. Callers
// match with errors.Is.
var (
	// ErrTagTypesEmpty is returned when construction or surgery would leave
	// the recommender without a single tag type.
	ErrTagTypesEmpty = errors.New("smr: no tag types")

	// ErrLengthMismatch is returned when paired sequences disagree in length
	// where recycling does not apply (matrices vs tag types), or when an
	// empty vector would have to be recycled.
	ErrLengthMismatch = errors.New("smr: length mismatch")

	// ErrDuplicateTagType is returned when a tag type name appears twice.
	ErrDuplicateTagType = errors.New("smr: duplicate tag type")

	// ErrTagTypeCollision is returned when a tag type name equals the item
	// identity column name.
	ErrTagTypeCollision = errors.New("smr: tag type collides with item column")

	// ErrUnknownItem is returned when an item identifier does not resolve to
	// a row.
	ErrUnknownItem = errors.New("smr: unknown item")

	// ErrUnknownTag is returned when a tag identifier does not resolve to a
	// column.
	ErrUnknownTag = errors.New("smr: unknown tag")

	// ErrTagsEmpty is returned by reordering when no tags are supplied.
	ErrTagsEmpty = errors.New("smr: no tags given")

	// ErrProfileLength is returned when a profile vector's length differs
	// from the number of tag columns.
	ErrProfileLength = errors.New("smr: profile vector length mismatch")

	// ErrRowOutOfRange is returned when a history row index is outside the
	// item dimension.
	ErrRowOutOfRange = errors.New("smr: row index out of range")
)
