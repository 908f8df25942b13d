// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

import (
	"github.com/goccy/go-json"

	"github.com/rmcphail/wayfinder/internal/geo"
)

// Attraction is a point-of-interest record. Records are loaded once per
// catalog snapshot and are immutable within a request.
type Attraction struct {
	// ID uniquely identifies the attraction within a catalog snapshot.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is free text used for content matching.
	Description string `json:"description,omitempty"`

	// Categories are activity tags (e.g. "natural", "cultural", "adventure").
	Categories []string `json:"categories"`

	// Region is a coarse geographic label (e.g. "Wellington").
	Region string `json:"region,omitempty"`

	// Location is the attraction's coordinates. Nil when the source record
	// had no usable coordinates; the attraction is still rankable.
	Location *geo.Point `json:"location,omitempty"`

	// Features is the fixed-schema feature set plus open extra attributes.
	Features Features `json:"features,omitempty"`

	// Rating holds the average rating and review count.
	Rating Rating `json:"rating,omitempty"`

	// BestSeasons lists seasons the attraction is best visited in.
	// May contain "all". Empty means no seasonal preference is known.
	BestSeasons []string `json:"best_seasons,omitempty"`

	// EstimatedDuration is a coarse visit-length bucket (e.g. "2-3 hours").
	EstimatedDuration string `json:"estimated_duration,omitempty"`

	// ReviewCount mirrors Rating.Count in source data that carries both.
	ReviewCount int `json:"review_count,omitempty"`

	// PriceRange is [min, max] expected spend.
	PriceRange []float64 `json:"price_range,omitempty"`
}

// PrimaryCategory returns the first category, or empty string.
func (a *Attraction) PrimaryCategory() string {
	if len(a.Categories) == 0 {
		return ""
	}
	return a.Categories[0]
}

// Rating holds aggregate rating data for an attraction.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Features is the per-attraction feature set. Known attributes have explicit
// fields; anything else the source provides lands in Extra so ingestion never
// drops data (and never degenerates into a fully loose map).
type Features struct {
	// Difficulty is the physical difficulty bucket: easy, medium, hard.
	Difficulty string `json:"difficulty,omitempty"`

	// Duration is the visit-length bucket: short, half_day, full_day.
	Duration string `json:"duration,omitempty"`

	// PriceLevel is a 1-5 price bucket. Zero means unknown.
	PriceLevel int `json:"price_level,omitempty"`

	// IsOutdoor reports whether the activity is outdoors. Attractions
	// default to outdoor when the source does not say otherwise.
	IsOutdoor bool `json:"is_outdoor"`

	// Extra holds source attributes outside the fixed schema.
	Extra map[string]any `json:"-"`
}

// featuresSchema mirrors the fixed portion of Features for decoding.
type featuresSchema struct {
	Difficulty string `json:"difficulty"`
	Duration   string `json:"duration"`
	PriceLevel int    `json:"price_level"`
	IsOutdoor  *bool  `json:"is_outdoor"`
}

// fixedFeatureKeys are the JSON keys captured by the fixed schema.
var fixedFeatureKeys = map[string]struct{}{
	"difficulty":  {},
	"duration":    {},
	"price_level": {},
	"is_outdoor":  {},
}

// UnmarshalJSON decodes the fixed schema and routes unknown keys into Extra.
func (f *Features) UnmarshalJSON(data []byte) error {
	var fixed featuresSchema
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}

	f.Difficulty = fixed.Difficulty
	f.Duration = fixed.Duration
	f.PriceLevel = fixed.PriceLevel
	f.IsOutdoor = true
	if fixed.IsOutdoor != nil {
		f.IsOutdoor = *fixed.IsOutdoor
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key, value := range all {
		if _, known := fixedFeatureKeys[key]; known {
			continue
		}
		if f.Extra == nil {
			f.Extra = make(map[string]any)
		}
		f.Extra[key] = value
	}

	return nil
}

// MarshalJSON emits the fixed schema plus any extra attributes.
func (f Features) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 4+len(f.Extra))
	for key, value := range f.Extra {
		out[key] = value
	}
	if f.Difficulty != "" {
		out["difficulty"] = f.Difficulty
	}
	if f.Duration != "" {
		out["duration"] = f.Duration
	}
	if f.PriceLevel != 0 {
		out["price_level"] = f.PriceLevel
	}
	out["is_outdoor"] = f.IsOutdoor
	return json.Marshal(out)
}
