// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package recommend

import (
	"errors"
	"time"

	"github.com/rmcphail/wayfinder/internal/models"
)

// ErrNotInitialized indicates the engine has no catalog snapshot yet.
// This is the one fatal error class in the pipeline: callers must load a
// catalog (or retry a failed load) before querying.
var ErrNotInitialized = errors.New("recommendation engine not initialized: no catalog loaded")

// ScoredCandidate is one ranked attraction with its score breakdown.
// Candidates are ephemeral: constructed per request, never persisted.
type ScoredCandidate struct {
	// Attraction points into the engine's immutable catalog snapshot.
	Attraction *models.Attraction

	// Composite is the final weighted, context-adjusted score in [0, 1].
	Composite float64

	// Component scores, recorded for explainability.
	ContentScore      float64
	LocationScore     float64
	PopularityScore   float64
	ContextMultiplier float64

	// DistanceKm is the great-circle distance from the traveler's
	// location, when known. Computed once during location scoring and
	// reused by reason strings and the itinerary builder.
	DistanceKm *float64

	// Reasons explains the ranking, most important first (at most 3).
	Reasons []string

	// WeatherSuitable reports whether current conditions suit a visit.
	WeatherSuitable bool
}

// Result is the outcome of one ranking pass.
type Result struct {
	// Candidates is the ranked top-k, possibly empty.
	Candidates []ScoredCandidate

	// Season is the Southern-Hemisphere season the pass was scored under.
	Season string

	// WeatherApplied reports whether a weather context contributed.
	WeatherApplied bool

	// Algorithm names the scoring pipeline for response metadata.
	Algorithm string

	// Message explains degraded (empty) results: it distinguishes an
	// empty catalog from a candidate set filtered to empty by distance.
	Message string

	// Eligible is the candidate count after filtering, before top-k.
	Eligible int

	// GeneratedAt is when the pass ran.
	GeneratedAt time.Time
}

// Degraded reports whether the pass produced no candidates.
func (r *Result) Degraded() bool {
	return len(r.Candidates) == 0
}
