// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

// UserPreferences is a traveler's preference profile.
type UserPreferences struct {
	// ActivityTypes are preferred activity categories, matched against
	// attraction categories (e.g. "natural", "cultural", "adventure").
	ActivityTypes []string `json:"activity_types" validate:"required,min=1,dive,required"`

	// BudgetRange is [min, max] budget, matched against price levels.
	BudgetRange []float64 `json:"budget_range" validate:"omitempty,len=2"`

	// TravelStyle is a free-form style tag (e.g. "adventure", "balanced").
	TravelStyle string `json:"travel_style"`

	// DifficultyPreference is the preferred difficulty bucket.
	DifficultyPreference string `json:"difficulty_preference"`

	// MaxTravelDistance is the hard distance cutoff in kilometers, applied
	// when a current location is provided.
	MaxTravelDistance float64 `json:"max_travel_distance" validate:"gte=0"`

	// GroupSize is the number of travelers.
	GroupSize int `json:"group_size" validate:"gte=0"`

	// Duration is the trip length in days.
	Duration int `json:"duration" validate:"gte=0,lte=60"`
}

// Location is a coordinate with an optional human-readable label.
type Location struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address,omitempty"`
}

// RecommendationRequest is the inbound recommendation query. The same shape
// drives itinerary generation.
type RecommendationRequest struct {
	UserID          string          `json:"user_id" validate:"required"`
	Preferences     UserPreferences `json:"preferences" validate:"required"`
	CurrentLocation *Location       `json:"current_location,omitempty"`
	ExcludeVisited  []string        `json:"exclude_visited"`
	TopK            int             `json:"top_k" validate:"gte=0,lte=100"`
}

// Request defaults applied at the boundary before the core sees the request.
const (
	DefaultTopK              = 10
	DefaultMaxTravelDistance = 200 // km
	DefaultTripDuration      = 7   // days
)

// ApplyDefaults fills zero-valued request fields with their defaults.
func (r *RecommendationRequest) ApplyDefaults() {
	if r.TopK <= 0 {
		r.TopK = DefaultTopK
	}
	if r.Preferences.MaxTravelDistance <= 0 {
		r.Preferences.MaxTravelDistance = DefaultMaxTravelDistance
	}
	if r.Preferences.Duration <= 0 {
		r.Preferences.Duration = DefaultTripDuration
	}
}
