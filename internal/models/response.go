// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

import (
	"time"

	"github.com/rmcphail/wayfinder/internal/geo"
)

// Recommendation is one ranked attraction in a recommendation response.
type Recommendation struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Categories  []string   `json:"categories"`
	Location    *geo.Point `json:"location,omitempty"`
	Rating      Rating     `json:"rating"`

	// ConfidenceScore is the composite ranking score in [0, 1].
	ConfidenceScore float64 `json:"confidence_score"`

	// Reasons explains the ranking, most important first (at most 3).
	Reasons []string `json:"reasons"`

	// DistanceKm is the great-circle distance from the traveler's current
	// location, when one was provided.
	DistanceKm *float64 `json:"distance,omitempty"`

	PriceRange      []float64 `json:"price_range,omitempty"`
	EstimatedTime   string    `json:"estimated_time,omitempty"`
	WeatherSuitable bool      `json:"weather_suitable"`
	Features        Features  `json:"features"`
}

// RecommendationContext carries non-result metadata about how a
// recommendation response was produced.
type RecommendationContext struct {
	LocationProvided bool   `json:"location_provided"`
	ExcludedCount    int    `json:"excluded_count"`
	Season           string `json:"season,omitempty"`
	WeatherApplied   bool   `json:"weather_applied"`

	// Message is a human-readable explanation for degraded results, e.g.
	// distinguishing "no data" from "filtered to empty by distance".
	Message string `json:"message,omitempty"`
}

// RecommendationResponse is the outbound recommendation payload.
type RecommendationResponse struct {
	Recommendations []Recommendation      `json:"recommendations"`
	TotalCount      int                   `json:"total_count"`
	AlgorithmUsed   string                `json:"algorithm_used"`
	Context         RecommendationContext `json:"context"`
	GeneratedAt     time.Time             `json:"generated_at"`
}
