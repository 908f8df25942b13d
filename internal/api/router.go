// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rmcphail/wayfinder/internal/middleware"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	// CORSAllowedOrigins lists origins permitted by CORS. Empty disables
	// cross-origin access.
	CORSAllowedOrigins []string

	// RateLimit is the per-IP request budget per window for API endpoints.
	RateLimit int

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration
}

// healthRateLimit is the permissive per-minute budget for health probes.
const healthRateLimit = 1000

// Router wires handlers into the chi route tree.
type Router struct {
	handler *Handler
	cfg     RouterConfig
}

// NewRouter creates a router.
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 300
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the full route tree with the global middleware stack.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	if len(router.cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   router.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health endpoints get a permissive limit so monitors can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(healthRateLimit, time.Minute))
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.RateLimit, router.cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Post("/recommendations", router.handler.Recommendations)
		r.Post("/itinerary", router.handler.Itinerary)
		r.Post("/catalog/reload", router.handler.CatalogReload)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
