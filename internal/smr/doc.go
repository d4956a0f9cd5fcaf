// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package smr implements a recommendation engine over a single sparse
// item×tag matrix.
//
// # Model
//
// Items (users, products, documents) are rows. Metadata tags, grouped into
// named tag types (genre, actor, keyword, ...), are columns, concatenated in
// contiguous blocks per tag type. Recommendations come from linear algebra
// over this matrix: a user's history or an explicit tag profile is projected
// into tag space, then projected back into item space to yield one score per
// item.
//
// The Recommender aggregate carries two matrices of identical shape: the
// current weighted matrix and the original unweighted count matrix. Weighting
// always rescales relative to the original, which is what makes repeated
// reweighting composable without rebuilding from transactions.
//
// # Value semantics
//
// A Recommender is never mutated. Weighting and tag-type removal return a
// new Recommender derived from the old one. Any number of goroutines may
// score against the same Recommender concurrently; replacing it is an
// ordinary pointer swap at a level above this package.
//
// # Invariants
//
// After every operation:
//
//  1. The weighted and unweighted matrices have identical shape.
//  2. Tag-type ranges are contiguous, ordered, non-overlapping, and exactly
//     cover [0, Cols) in tag-type order.
//  3. Item and tag name→index lookups agree exactly with the matrices' row
//     and column names.
//  4. Weighting never changes the unweighted matrix.
//
// Indices are 0-based and ranges half-open, the Go convention.
//
// # Vector recycling
//
// Weight and rating vectors shorter than their target are repeated
// cyclically and longer ones truncated, mirroring R-style vector recycling.
// This leniency is deliberate and documented per call; callers who want
// strict lengths should size their vectors exactly. An empty vector cannot
// be recycled and is rejected.
package smr
