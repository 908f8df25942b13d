// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import (
	"math"
	"testing"

	"github.com/rmcphail/wayfinder/internal/geo"
)

func TestScoreLocation(t *testing.T) {
	wellington := &geo.Point{Lat: -41.2924, Lng: 174.7787}

	t.Run("no traveler location is neutral", func(t *testing.T) {
		result := ScoreLocation(&geo.Point{Lat: -36.8, Lng: 174.7}, nil, 200)
		if result.Score != NeutralLocationScore {
			t.Errorf("Score = %.2f, want %.2f", result.Score, NeutralLocationScore)
		}
		if result.DistanceKm != nil {
			t.Error("DistanceKm should be nil without a traveler location")
		}
	})

	t.Run("missing attraction coordinates", func(t *testing.T) {
		result := ScoreLocation(nil, wellington, 200)
		if result.Score != MissingCoordinateScore {
			t.Errorf("Score = %.2f, want %.2f", result.Score, MissingCoordinateScore)
		}
		if result.Excluded {
			t.Error("missing coordinates should not exclude")
		}
	})

	t.Run("same point scores one", func(t *testing.T) {
		result := ScoreLocation(wellington, wellington, 200)
		if math.Abs(result.Score-1.0) > 0.001 {
			t.Errorf("Score = %.4f, want ~1.0", result.Score)
		}
		if result.DistanceKm == nil || *result.DistanceKm > 0.01 {
			t.Errorf("DistanceKm = %v, want ~0", result.DistanceKm)
		}
	})

	t.Run("exponential decay", func(t *testing.T) {
		// Lower Hutt, roughly 13 km from central Wellington.
		nearby := &geo.Point{Lat: -41.2094, Lng: 174.9100}
		result := ScoreLocation(nearby, wellington, 200)
		if result.DistanceKm == nil {
			t.Fatal("DistanceKm is nil")
		}
		want := math.Exp(-*result.DistanceKm / DistanceDecayKm)
		if math.Abs(result.Score-want) > 1e-9 {
			t.Errorf("Score = %.6f, want exp(-d/%.0f) = %.6f", result.Score, DistanceDecayKm, want)
		}
	})

	t.Run("beyond cutoff is excluded", func(t *testing.T) {
		auckland := &geo.Point{Lat: -36.8485, Lng: 174.7633}
		result := ScoreLocation(auckland, wellington, 100)
		if !result.Excluded {
			t.Error("attraction ~494 km away should be excluded at 100 km cutoff")
		}
	})

	t.Run("inside cutoff is kept", func(t *testing.T) {
		auckland := &geo.Point{Lat: -36.8485, Lng: 174.7633}
		result := ScoreLocation(auckland, wellington, 600)
		if result.Excluded {
			t.Error("attraction within cutoff should not be excluded")
		}
		if result.Score <= 0 || result.Score >= 1 {
			t.Errorf("Score = %.4f, want in (0, 1)", result.Score)
		}
	})

	t.Run("zero cutoff disables exclusion", func(t *testing.T) {
		auckland := &geo.Point{Lat: -36.8485, Lng: 174.7633}
		result := ScoreLocation(auckland, wellington, 0)
		if result.Excluded {
			t.Error("zero cutoff should disable the distance gate")
		}
	})
}
