// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import (
	"math"

	"github.com/rmcphail/wayfinder/internal/geo"
)

const (
	// NeutralLocationScore is assigned to every attraction when the
	// traveler provides no current location.
	NeutralLocationScore = 0.5

	// MissingCoordinateScore is the fallback for attractions without
	// coordinates when a location is provided.
	MissingCoordinateScore = 0.3

	// DistanceDecayKm is the characteristic decay distance: score =
	// exp(-distance/DistanceDecayKm), so attractions 100km away score
	// about 0.37 and nearby ones approach 1.
	DistanceDecayKm = 100.0
)

// LocationResult is the location component outcome for one attraction.
type LocationResult struct {
	// Score is the location suitability in [0, 1].
	Score float64

	// DistanceKm is the great-circle distance from the traveler, when
	// both coordinates are known. Attached to the candidate so the
	// itinerary builder and reason strings never recompute it.
	DistanceKm *float64

	// Excluded reports that the attraction is beyond the traveler's
	// maximum travel distance and must be removed from the candidate set
	// entirely, not merely penalized.
	Excluded bool
}

// ScoreLocation computes the location component for one attraction.
// With no traveler location every attraction gets the neutral score.
// Attractions beyond maxDistanceKm are hard-excluded for predictable,
// bounded result sets.
func ScoreLocation(attraction *geo.Point, traveler *geo.Point, maxDistanceKm float64) LocationResult {
	if traveler == nil {
		return LocationResult{Score: NeutralLocationScore}
	}

	if attraction == nil {
		return LocationResult{Score: MissingCoordinateScore}
	}

	distance := geo.Haversine(*traveler, *attraction)
	if maxDistanceKm > 0 && distance > maxDistanceKm {
		return LocationResult{DistanceKm: &distance, Excluded: true}
	}

	return LocationResult{
		Score:      math.Exp(-distance / DistanceDecayKm),
		DistanceKm: &distance,
	}
}
