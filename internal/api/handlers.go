// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/mithua/smr/internal/logging"
	"github.com/mithua/smr/internal/metrics"
	"github.com/mithua/smr/internal/smr"
	"github.com/mithua/smr/internal/sparse"
)

// Handler serves the recommendation API. The model is held behind an
// atomic pointer so a reload can swap it without interrupting requests.
type Handler struct {
	model atomic.Pointer[smr.Recommender]
	log   zerolog.Logger
}

// NewHandler wraps a built model.
func NewHandler(rec *smr.Recommender) *Handler {
	h := &Handler{log: logging.Component("api")}
	h.model.Store(rec)
	return h
}

// Swap replaces the served model. In-flight requests finish against the
// model they started with.
func (h *Handler) Swap(rec *smr.Recommender) {
	h.model.Store(rec)
	metrics.SetModelShape(rec.NumItems(), rec.NumTags())
}

func (h *Handler) current() *smr.Recommender { return h.model.Load() }

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_json", "malformed request body: "+err.Error())
		return false
	}
	return true
}

// respondModelError maps the scoring package's sentinel errors onto
// HTTP statuses.
func respondModelError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, smr.ErrUnknownItem):
		respondError(w, r, http.StatusNotFound, "unknown_item", err.Error())
	case errors.Is(err, smr.ErrUnknownTag):
		respondError(w, r, http.StatusNotFound, "unknown_tag", err.Error())
	case errors.Is(err, smr.ErrTagsEmpty),
		errors.Is(err, smr.ErrLengthMismatch),
		errors.Is(err, smr.ErrProfileLength),
		errors.Is(err, smr.ErrRowOutOfRange),
		errors.Is(err, sparse.ErrIndexOutOfRange):
		respondError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		respondError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		respondError(w, r, http.StatusBadRequest, "invalid_request", "items must not be empty")
		return
	}
	ratings := req.Ratings
	if len(ratings) == 0 {
		ratings = []float64{1}
	}

	start := time.Now()
	recs, err := h.current().Recommend(req.Items, ratings, req.N, req.RemoveHistory)
	if err != nil {
		respondModelError(w, r, err)
		return
	}
	metrics.ObserveScoring("history", time.Since(start))

	respondJSON(w, r, http.StatusOK, RecommendResponse{Recommendations: recs})
}

func (h *Handler) handleRecommendByProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRecommendRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ratings := req.Ratings
	if len(ratings) == 0 {
		ratings = []float64{1}
	}

	start := time.Now()
	recs, err := h.current().RecommendByProfile(req.Tags, ratings, req.N)
	if err != nil {
		respondModelError(w, r, err)
		return
	}
	metrics.ObserveScoring("profile", time.Since(start))

	respondJSON(w, r, http.StatusOK, RecommendResponse{Recommendations: recs})
}

func (h *Handler) handleReorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	model := h.current()
	for i, rec := range req.Recommendations {
		if rec.Index < 0 || rec.Index >= model.NumItems() {
			respondError(w, r, http.StatusBadRequest, "invalid_request",
				"recommendation "+strconv.Itoa(i)+": index "+strconv.Itoa(rec.Index)+" out of range")
			return
		}
	}

	start := time.Now()
	recs, err := model.ReorderByTagOverlap(req.Recommendations, req.Tags)
	if err != nil {
		respondModelError(w, r, err)
		return
	}
	metrics.ObserveScoring("reorder", time.Since(start))

	respondJSON(w, r, http.StatusOK, RecommendResponse{Recommendations: recs})
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	items := query["item"]
	if len(items) == 0 {
		respondError(w, r, http.StatusBadRequest, "invalid_request", "at least one item parameter is required")
		return
	}
	ratings := []float64{1}
	if raw := query["rating"]; len(raw) > 0 {
		ratings = make([]float64, len(raw))
		for i, s := range raw {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				respondError(w, r, http.StatusBadRequest, "invalid_request", "rating must be numeric: "+s)
				return
			}
			ratings[i] = v
		}
	}

	model := h.current()
	profile, err := model.ProfileVector(items, ratings)
	if err != nil {
		respondModelError(w, r, err)
		return
	}

	entries := make([]ProfileEntry, 0)
	tags := model.Tags()
	for j, weight := range profile {
		if weight == 0 {
			continue
		}
		entries = append(entries, ProfileEntry{
			Tag:     tags[j],
			TagType: model.TagTypeOfColumn(j),
			Weight:  weight,
		})
	}
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].Weight > entries[b].Weight })

	respondJSON(w, r, http.StatusOK, ProfileResponse{Profile: entries})
}

func (h *Handler) handleTagTypes(w http.ResponseWriter, r *http.Request) {
	model := h.current()
	factors := model.TagTypeSignificanceFactors()

	infos := make([]TagTypeInfo, 0, len(model.TagTypes()))
	for _, tt := range model.TagTypes() {
		rng, _ := model.Range(tt)
		infos = append(infos, TagTypeInfo{
			Name:         tt,
			Start:        rng.Start,
			End:          rng.End,
			Tags:         rng.Len(),
			Significance: factors[tt],
		})
	}

	respondJSON(w, r, http.StatusOK, TagTypesResponse{
		ItemColumn: model.ItemColumn(),
		Items:      model.NumItems(),
		TagTypes:   infos,
	})
}

func (h *Handler) handleTagTypeOf(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tt := h.current().TagTypeOf(id)
	if tt == smr.TagTypeNone {
		respondError(w, r, http.StatusNotFound, "unknown_id", "no tag or item named "+strconv.Quote(id))
		return
	}
	respondJSON(w, r, http.StatusOK, TagTypeOfResponse{ID: id, TagType: tt})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
