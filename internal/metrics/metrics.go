// SMR - Sparse Matrix Recommender
// Copyright 2026 Mithua
// SPDX-License-Identifier: MIT
// https://github.com/mithua/smr

// Package metrics provides Prometheus instrumentation for the recommender
// service: HTTP request throughput and latency, scoring latency, and model
// shape gauges. Exposed via promhttp on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smr_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ScoringDuration observes recommendation scoring latency by entry
	// point (history, profile, reorder).
	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smr_scoring_duration_seconds",
			Help:    "Recommendation scoring latency in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"entry"},
	)

	// ModelItems reports the item dimension of the loaded recommender.
	ModelItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smr_model_items",
		Help: "Number of item rows in the loaded recommender",
	})

	// ModelTags reports the tag dimension of the loaded recommender.
	ModelTags = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smr_model_tags",
		Help: "Number of tag columns in the loaded recommender",
	})
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveScoring records one scoring call.
func ObserveScoring(entry string, elapsed time.Duration) {
	ScoringDuration.WithLabelValues(entry).Observe(elapsed.Seconds())
}

// SetModelShape records the loaded model dimensions.
func SetModelShape(items, tags int) {
	ModelItems.Set(float64(items))
	ModelTags.Set(float64(tags))
}
