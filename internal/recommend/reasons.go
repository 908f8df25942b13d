// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package recommend

import (
	"fmt"
	"strings"

	"github.com/rmcphail/wayfinder/internal/models"
)

const maxReasons = 3

// Thresholds for reason generation.
const (
	highRatingThreshold = 4.5
	popularReviewCount  = 1000
	nearbyDistanceKm    = 25.0
)

// buildReasons generates up to three human-readable explanations for a
// candidate, ordered by importance: interest match first, then rating,
// review volume, and proximity.
func buildReasons(c *ScoredCandidate, prefs *models.UserPreferences) []string {
	reasons := make([]string, 0, maxReasons)

	if matched := matchingInterests(c.Attraction.Categories, prefs.ActivityTypes); len(matched) > 0 {
		reasons = append(reasons, "Fits your interests: "+strings.Join(matched, ", "))
	}

	if c.Attraction.Rating.Average >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("High-rated attraction (%.1f/5.0)", c.Attraction.Rating.Average))
	}

	if len(reasons) < maxReasons && c.Attraction.Rating.Count > popularReviewCount {
		reasons = append(reasons, "Popular attraction with many reviews")
	}

	if len(reasons) < maxReasons && c.DistanceKm != nil && *c.DistanceKm <= nearbyDistanceKm {
		reasons = append(reasons, fmt.Sprintf("Only %.1f km from your location", *c.DistanceKm))
	}

	if len(reasons) == 0 {
		return []string{"Based on your preferences"}
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return reasons
}

// matchingInterests returns the categories shared between an attraction and
// the traveler's activity types, preserving catalog category order.
func matchingInterests(categories, activityTypes []string) []string {
	if len(categories) == 0 || len(activityTypes) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(activityTypes))
	for _, activity := range activityTypes {
		wanted[strings.ToLower(activity)] = struct{}{}
	}

	var matched []string
	for _, category := range categories {
		if _, ok := wanted[strings.ToLower(category)]; ok {
			matched = append(matched, category)
		}
	}

	return matched
}
