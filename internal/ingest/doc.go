// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package ingest reads transaction tables for the recommender core.
//
// The core consumes a rectangular table of (item, tag-type, tag-value)
// observations; this package produces it from CSV files. The first record
// is the header; every later record is one observation row keyed by the
// header's column names. The reader validates the table against the
// recommender's input contract (the item identity column must exist and
// every requested tag-type column must exist and be distinct from it)
// and reports malformed input with file positions.
//
// Blank cell values are preserved as empty strings; the builder skips them
// during aggregation, so a row only contributes to the tag types it
// actually carries.
package ingest
