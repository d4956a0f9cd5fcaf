// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router assembles the HTTP surface around a handler.
func Router(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommendations", h.handleRecommend)
		r.Post("/recommendations/profile", h.handleRecommendByProfile)
		r.Post("/recommendations/reorder", h.handleReorder)
		r.Get("/profile", h.handleProfile)
		r.Get("/tagtypes", h.handleTagTypes)
		r.Get("/tagtypes/{id}", h.handleTagTypeOf)
	})

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}
