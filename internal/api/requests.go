// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

package api

import "github.com/mithua/smr/internal/smr"

// RecommendRequest scores a consumption history against the model.
type RecommendRequest struct {
	Items         []string  `json:"items"`
	Ratings       []float64 `json:"ratings,omitempty"`
	N             int       `json:"n"`
	RemoveHistory bool      `json:"remove_history"`
}

// ProfileRecommendRequest scores an explicit tag profile.
type ProfileRecommendRequest struct {
	Tags    []string  `json:"tags"`
	Ratings []float64 `json:"ratings,omitempty"`
	N       int       `json:"n"`
}

// ReorderRequest re-ranks an existing recommendation list by overlap
// with the given tags.
type ReorderRequest struct {
	Recommendations []smr.ScoredRow `json:"recommendations"`
	Tags            []string        `json:"tags"`
}

// RecommendResponse is the payload for all scoring endpoints.
type RecommendResponse struct {
	Recommendations []smr.ScoredRow `json:"recommendations"`
}

// ProfileEntry is one nonzero coordinate of a tag-space profile.
type ProfileEntry struct {
	Tag     string  `json:"tag"`
	TagType string  `json:"tag_type"`
	Weight  float64 `json:"weight"`
}

// ProfileResponse is the tag-space profile of an item history, sorted
// by descending weight.
type ProfileResponse struct {
	Profile []ProfileEntry `json:"profile"`
}

// TagTypeInfo describes one tag-type block of the model.
type TagTypeInfo struct {
	Name         string  `json:"name"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Tags         int     `json:"tags"`
	Significance float64 `json:"significance"`
}

// TagTypesResponse lists the model's tag-type blocks in column order.
type TagTypesResponse struct {
	ItemColumn string        `json:"item_column"`
	Items      int           `json:"items"`
	TagTypes   []TagTypeInfo `json:"tag_types"`
}

// TagTypeOfResponse names the tag type owning an identifier.
type TagTypeOfResponse struct {
	ID      string `json:"id"`
	TagType string `json:"tag_type"`
}
