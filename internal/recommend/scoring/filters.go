// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import "github.com/rmcphail/wayfinder/internal/models"

// maxPriceLevel is the top of the 1-5 price-level scale. Budget ranges with
// an upper bound at or below this are interpreted as price-level bands;
// larger values are currency amounts matched against the attraction's
// price range.
const maxPriceLevel = 5

// defaultPriceLevel stands in for attractions with no price level.
const defaultPriceLevel = 2

// PassesFilters applies hard preference filters ahead of scoring.
// Currently only the budget gate. Difficulty preference influences content
// similarity rather than filtering.
func PassesFilters(a *models.Attraction, prefs *models.UserPreferences) bool {
	return passesBudget(a, prefs.BudgetRange)
}

func passesBudget(a *models.Attraction, budget []float64) bool {
	if len(budget) != 2 {
		return true
	}
	low, high := budget[0], budget[1]
	if high <= 0 {
		return true
	}

	if high <= maxPriceLevel {
		// Budget expressed as a price-level band.
		level := float64(a.Features.PriceLevel)
		if a.Features.PriceLevel == 0 {
			level = defaultPriceLevel
		}
		return level >= low && level <= high
	}

	// Currency budget: admit the attraction unless its cheapest option
	// exceeds the budget ceiling. Attractions without price data pass.
	if len(a.PriceRange) == 2 {
		return a.PriceRange[0] <= high
	}

	return true
}
