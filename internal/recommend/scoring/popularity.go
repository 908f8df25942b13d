// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import "github.com/rmcphail/wayfinder/internal/models"

const (
	// ratingWeight and volumeWeight blend average rating with review
	// volume: score = 0.7*(avg/5) + 0.3*(count/max_count).
	ratingWeight = 0.7
	volumeWeight = 0.3

	// defaultRating stands in for attractions with no rating data, so a
	// missing rating degrades that attraction's score instead of zeroing it.
	defaultRating = 3.0

	maxRating = 5.0
)

// PopularityScores normalizes rating and review volume over the given
// candidate set. The set is the post-distance-filter candidates, so
// max_count normalization stays meaningful after filtering. Scores are
// clamped to [0, 1].
func PopularityScores(attractions []*models.Attraction) map[string]float64 {
	if len(attractions) == 0 {
		return nil
	}

	maxCount := 0
	for _, a := range attractions {
		if count := reviewCount(a); count > maxCount {
			maxCount = count
		}
	}

	scores := make(map[string]float64, len(attractions))
	for _, a := range attractions {
		average := a.Rating.Average
		if average <= 0 {
			average = defaultRating
		}

		score := ratingWeight * (average / maxRating)
		if maxCount > 0 {
			score += volumeWeight * (float64(reviewCount(a)) / float64(maxCount))
		}

		scores[a.ID] = clamp01(score)
	}

	return scores
}

func reviewCount(a *models.Attraction) int {
	if a.Rating.Count > 0 {
		return a.Rating.Count
	}
	return a.ReviewCount
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
