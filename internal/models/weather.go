// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

import "strings"

// Weather is a point-in-time weather snapshot used for context scoring and
// itinerary metadata. The core only depends on Condition, Temperature, and
// SuitableForOutdoor; the rest is passthrough for API consumers.
type Weather struct {
	Condition          string  `json:"condition"`
	Description        string  `json:"description,omitempty"`
	Temperature        float64 `json:"temperature"`
	FeelsLike          float64 `json:"feels_like,omitempty"`
	Humidity           int     `json:"humidity,omitempty"`
	WindSpeed          float64 `json:"wind_speed,omitempty"`
	SuitableForOutdoor bool    `json:"suitable_for_outdoor"`
	Source             string  `json:"source,omitempty"`
	Icon               string  `json:"icon,omitempty"`
}

// adverseConditions are weather conditions that penalize outdoor activities.
var adverseConditions = map[string]struct{}{
	"rain":         {},
	"rainy":        {},
	"drizzle":      {},
	"storm":        {},
	"thunderstorm": {},
	"snow":         {},
}

// Adverse reports whether the condition penalizes outdoor activities.
func (w *Weather) Adverse() bool {
	_, ok := adverseConditions[strings.ToLower(w.Condition)]
	return ok
}

// Clear reports whether the condition favors outdoor activities.
func (w *Weather) Clear() bool {
	switch strings.ToLower(w.Condition) {
	case "clear", "sunny":
		return true
	}
	return false
}
