// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package sparse implements an immutable sparse matrix with named rows and
// columns, stored in CSR (compressed sparse row) form.
//
// The package exists to serve the recommender core: it provides exactly the
// operations the item×tag algebra needs and nothing more:
//
//   - construction from (row, col, value) triplets
//   - column-wise concatenation of matrices sharing a row set
//   - column-range extraction
//   - column scaling (right-multiplication by a diagonal matrix)
//   - matrix·vector and rowCombination (vectorᵗ·matrix) products
//   - per-column-range sums and maxima
//   - dense export for interop with gonum
//
// # Immutability
//
// A Matrix is never modified after construction. Every operation that would
// change shape or content returns a fresh Matrix; input matrices are safe to
// share across goroutines without synchronization.
//
// # Names
//
// Row and column names travel with the matrix, the way dimnames travel with
// an R matrix. Name→position lookups are O(1) via maps built once at
// construction. Operations that derive a new matrix derive its names from the
// operands, so names and positions cannot drift apart.
//
// # Numeric policy
//
// NaN and ±Inf entries are rejected at construction and by ScaleColumns.
// All other values, including zero, are legal; explicit zeros are dropped.
package sparse
