// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package metrics provides Prometheus instrumentation for Wayfinder:
// HTTP endpoint latency, recommendation pipeline timing, external provider
// calls, circuit breaker state, and provider cache efficiency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfinder_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// Recommendation pipeline metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_recommendation_requests_total",
			Help: "Total recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "degraded", "error"
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfinder_scoring_duration_seconds",
			Help:    "Duration of scoring pipeline stages in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"stage"}, // "content", "location", "popularity", "context", "total"
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wayfinder_recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
	)

	// Catalog metrics
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wayfinder_catalog_attractions",
			Help: "Number of attractions in the active catalog snapshot",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_catalog_reloads_total",
			Help: "Total catalog load attempts by outcome",
		},
		[]string{"outcome"}, // "ok", "error"
	)

	// External provider metrics
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfinder_provider_request_duration_seconds",
			Help:    "Duration of external provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"}, // "routing", "weather"
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_provider_errors_total",
			Help: "Total external provider failures (recovered via fallback)",
		},
		[]string{"provider"},
	)

	ProviderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_provider_fallbacks_total",
			Help: "Total times the geometric fallback estimator was used",
		},
		[]string{"provider"},
	)

	// Circuit breaker state: 0 = closed, 1 = half-open, 2 = open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfinder_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Provider cache metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_cache_hits_total",
			Help: "Total provider cache hits",
		},
		[]string{"cache"}, // "travel", "weather"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfinder_cache_misses_total",
			Help: "Total provider cache misses",
		},
		[]string{"cache"},
	)
)

// ObserveScoringStage records the duration of one scoring pipeline stage.
func ObserveScoringStage(stage string, start time.Time) {
	ScoringDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
