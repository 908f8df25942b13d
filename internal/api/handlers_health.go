// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package api

import (
	"net/http"
	"time"
)

// healthStatus is the health endpoint payload.
type healthStatus struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	UptimeSeconds  int64  `json:"uptime_seconds"`
	CatalogLoaded  bool   `json:"catalog_loaded"`
	CatalogSize    int    `json:"catalog_size"`
	CatalogVersion int    `json:"catalog_version"`
	WeatherEnabled bool   `json:"weather_enabled"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	status := healthStatus{
		Status:         "ok",
		Version:        h.version,
		UptimeSeconds:  int64(time.Since(h.startTime).Seconds()),
		CatalogLoaded:  h.engine.Initialized(),
		CatalogSize:    h.engine.CatalogSize(),
		CatalogVersion: h.engine.CatalogVersion(),
		WeatherEnabled: h.weather.Configured(),
	}
	if !status.CatalogLoaded {
		status.Status = "degraded"
	}

	rw.Success(status)
}

// HealthLive handles GET /api/v1/health/live. Liveness only confirms the
// process serves requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires a loaded
// catalog.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.engine.Initialized() {
		rw.ServiceUnavailable("catalog not loaded")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
