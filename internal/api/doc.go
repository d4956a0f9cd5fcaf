// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package api exposes the recommender over HTTP.
//
// # Routes
//
//	POST /api/v1/recommendations          history → top-n items
//	POST /api/v1/recommendations/profile  explicit tag profile → top-n items
//	POST /api/v1/recommendations/reorder  re-rank a list by tag overlap
//	GET  /api/v1/profile                  item history → tag-space profile
//	GET  /api/v1/tagtypes                 tag types, ranges, significance factors
//	GET  /api/v1/tagtypes/{id}            owning tag type of a tag or item
//	GET  /healthz                         liveness
//	GET  /metrics                         Prometheus metrics
//
// All endpoints answer with a uniform JSON envelope: {"success": bool,
// "data": ..., "error": {code, message}, "meta": {request_id}}.
//
// # Model swaps
//
// The handler holds the current Recommender behind an atomic pointer.
// Scoring requests read whatever model is current; replacing the model
// (reweighting, surgery) is a pointer swap and never interleaves with an
// in-flight read, because every derived model is a distinct immutable
// value.
package api
