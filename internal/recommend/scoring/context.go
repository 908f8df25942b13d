// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import (
	"time"

	"github.com/rmcphail/wayfinder/internal/models"
)

// Seasonal and weather multipliers. The context adjustment is applied
// multiplicatively to the running composite, distinct from the additive
// components, and the final multiplier is capped at MaxContextMultiplier.
const (
	seasonMatchBoost    = 1.3
	seasonMismatchDrag  = 0.8
	adverseOutdoorDrag  = 0.6
	clearOutdoorBoost   = 1.2
	comfortableTempLift = 1.1
	extremeTempDrag     = 0.7

	MaxContextMultiplier = 1.5

	comfortableTempMin = 10.0
	comfortableTempMax = 25.0
	extremeTempMin     = 0.0
	extremeTempMax     = 35.0
)

// Season maps a timestamp to a Southern-Hemisphere season name.
func Season(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "summer"
	case time.March, time.April, time.May:
		return "autumn"
	case time.June, time.July, time.August:
		return "winter"
	default:
		return "spring"
	}
}

// ContextMultiplier computes the seasonal and weather adjustment for one
// attraction. weather may be nil, in which case only the seasonal factor
// applies.
func ContextMultiplier(a *models.Attraction, season string, weather *models.Weather) float64 {
	multiplier := 1.0

	if len(a.BestSeasons) > 0 {
		if seasonListed(a.BestSeasons, season) {
			multiplier *= seasonMatchBoost
		} else {
			multiplier *= seasonMismatchDrag
		}
	}

	if weather != nil {
		multiplier *= weatherMultiplier(a, weather)
	}

	if multiplier > MaxContextMultiplier {
		multiplier = MaxContextMultiplier
	}

	return multiplier
}

// WeatherSuitable reports whether current conditions suit the attraction.
// Indoor attractions are always suitable; outdoor attractions are
// unsuitable in adverse precipitation.
func WeatherSuitable(a *models.Attraction, weather *models.Weather) bool {
	if weather == nil || !a.Features.IsOutdoor {
		return true
	}
	return !weather.Adverse()
}

func weatherMultiplier(a *models.Attraction, weather *models.Weather) float64 {
	multiplier := 1.0

	// Precipitation affects outdoor attractions only.
	if a.Features.IsOutdoor {
		switch {
		case weather.Adverse():
			multiplier *= adverseOutdoorDrag
		case weather.Clear():
			multiplier *= clearOutdoorBoost
		}
	}

	temp := weather.Temperature
	switch {
	case temp >= comfortableTempMin && temp <= comfortableTempMax:
		multiplier *= comfortableTempLift
	case temp < extremeTempMin || temp > extremeTempMax:
		multiplier *= extremeTempDrag
	}

	return multiplier
}

func seasonListed(seasons []string, season string) bool {
	for _, s := range seasons {
		if s == season || s == "all" {
			return true
		}
	}
	return false
}
