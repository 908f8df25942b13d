// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package itinerary

import (
	"time"

	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/travel"
)

// Segment is one visit in a day plan: the attraction, the travel leg from
// the previous stop (or the day's start location), and the visit window.
type Segment struct {
	Attraction models.Recommendation `json:"attraction"`
	Travel     travel.Leg            `json:"travel"`

	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
}

// DayPlan is one day of sequenced visits.
type DayPlan struct {
	DayIndex int       `json:"day_index"`
	Date     string    `json:"date"`
	Segments []Segment `json:"segments"`

	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
}

// Summary aggregates a plan.
type Summary struct {
	TotalDays          int     `json:"total_days"`
	TotalAttractions   int     `json:"total_attractions"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalTravelMinutes float64 `json:"total_travel_minutes"`
	AttractionsPerDay  float64 `json:"attractions_per_day"`
	AverageConfidence  float64 `json:"average_confidence"`
}

// Plan is a complete itinerary.
type Plan struct {
	ID      string          `json:"itinerary_id"`
	Days    []DayPlan       `json:"days"`
	Summary Summary         `json:"summary"`
	Weather *models.Weather `json:"weather,omitempty"`

	// Message explains an empty plan.
	Message string `json:"message,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
