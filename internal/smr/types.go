// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package smr

import "github.com/mithua/smr/internal/sparse"

// Row is one transaction observation: a record of column name → value.
// The ingest layer produces these from tabular input; the builder consumes
// the item identity column and one column per tag type.
type Row map[string]string

// TagTypeRange is the half-open column span [Start, End) a tag type
// occupies in the concatenated matrix.
type TagTypeRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of columns in the range.
func (r TagTypeRange) Len() int { return r.End - r.Start }

// ScoredRow is one row of the uniform result table every scoring and
// profile operation returns: a score, a 0-based row or column position, and
// the item or tag identifier at that position.
type ScoredRow struct {
	Score float64 `json:"score"`
	Index int     `json:"index"`
	ID    string  `json:"id"`
}

// TagTypeNone is the sentinel TagTypeOf returns for identifiers that
// resolve to neither a tag, an item, nor a column. Absence of a mapping is
// an expected outcome for exploratory callers, not an error.
const TagTypeNone = "None"

// Recommender is the immutable aggregate: the weighted and unweighted
// item×tag matrices plus the tag-type column partition. Construct via
// FromTransactions or FromMatrices; derive reweighted or reduced variants
// via the Apply*/Remove* methods. Safe for concurrent reads.
type Recommender struct {
	m          *sparse.Matrix // current weighted matrix
	m01        *sparse.Matrix // original unweighted count matrix
	tagTypes   []string
	ranges     map[string]TagTypeRange
	itemColumn string
}

// Matrix returns the current weighted matrix. The matrix is immutable and
// may be shared.
func (r *Recommender) Matrix() *sparse.Matrix { return r.m }

// RawMatrix returns the original unweighted count matrix, the source of
// truth for significance-factor recomputation.
func (r *Recommender) RawMatrix() *sparse.Matrix { return r.m01 }

// ItemColumn returns the semantic name of the item identity field.
func (r *Recommender) ItemColumn() string { return r.itemColumn }

// TagTypes returns the tag type names in column-block order.
func (r *Recommender) TagTypes() []string { return append([]string(nil), r.tagTypes...) }

// TagTypeRanges returns a copy of the tag type → column range mapping.
func (r *Recommender) TagTypeRanges() map[string]TagTypeRange {
	out := make(map[string]TagTypeRange, len(r.ranges))
	for k, v := range r.ranges {
		out[k] = v
	}
	return out
}

// Range returns the column range of one tag type.
func (r *Recommender) Range(tagType string) (TagTypeRange, bool) {
	rng, ok := r.ranges[tagType]
	return rng, ok
}

// NumItems returns the number of item rows.
func (r *Recommender) NumItems() int { return r.m.Rows() }

// NumTags returns the number of tag columns.
func (r *Recommender) NumTags() int { return r.m.Cols() }

// Items returns the item identifiers in row order.
func (r *Recommender) Items() []string { return r.m.RowNames() }

// Tags returns the tag identifiers in column order.
func (r *Recommender) Tags() []string { return r.m.ColNames() }

// ItemIndex resolves an item identifier to its row.
func (r *Recommender) ItemIndex(id string) (int, bool) { return r.m.RowIndex(id) }

// TagIndex resolves a tag identifier to its column.
func (r *Recommender) TagIndex(tag string) (int, bool) { return r.m.ColIndex(tag) }
