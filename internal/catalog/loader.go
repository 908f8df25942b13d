// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package catalog handles ingestion and validation of attraction catalog
// snapshots. A snapshot is loaded once at service start (or on explicit
// reload) from a JSON source; the recommendation engine holds the validated
// result immutably for the snapshot's lifetime.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/models"
)

// Ingestion errors. These are catalog-level failures: they abort the load
// and surface as initialization errors, unlike per-record coordinate
// problems which degrade to "no location".
var (
	// ErrDuplicateID indicates two records share an attraction id.
	ErrDuplicateID = errors.New("duplicate attraction id")

	// ErrMissingID indicates a record without an id.
	ErrMissingID = errors.New("attraction record missing id")

	// ErrMissingName indicates a record without a name.
	ErrMissingName = errors.New("attraction record missing name")

	// ErrMissingCategories indicates a record without categories.
	ErrMissingCategories = errors.New("attraction record missing categories")
)

// rawRecord mirrors models.Attraction but keeps the location raw so that
// malformed coordinates can be tolerated instead of failing the decode.
type rawRecord struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Categories        []string        `json:"categories"`
	Region            string          `json:"region"`
	Location          json.RawMessage `json:"location"`
	Features          models.Features `json:"features"`
	Rating            models.Rating   `json:"rating"`
	BestSeasons       []string        `json:"best_seasons"`
	EstimatedDuration string          `json:"estimated_duration"`
	ReviewCount       int             `json:"review_count"`
	PriceRange        []float64       `json:"price_range"`
}

// Loader parses and validates catalog snapshots.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a catalog loader.
func NewLoader() *Loader {
	return &Loader{
		logger: logging.Component("catalog"),
	}
}

// LoadFile reads and parses a catalog snapshot from a JSON file.
func (l *Loader) LoadFile(path string) ([]models.Attraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	attractions, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return attractions, nil
}

// Parse decodes and validates a JSON array of attraction records.
// Records with malformed or missing coordinates are kept with a nil
// location; records missing id, name, or categories fail the whole load.
func (l *Loader) Parse(data []byte) ([]models.Attraction, error) {
	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode attraction records: %w", err)
	}

	attractions := make([]models.Attraction, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrMissingName)
		}
		if len(rec.Categories) == 0 {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrMissingCategories)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrDuplicateID)
		}
		seen[rec.ID] = struct{}{}

		attraction := models.Attraction{
			ID:                rec.ID,
			Name:              rec.Name,
			Description:       rec.Description,
			Categories:        rec.Categories,
			Region:            rec.Region,
			Location:          l.parseLocation(rec.ID, rec.Location),
			Features:          rec.Features,
			Rating:            rec.Rating,
			BestSeasons:       rec.BestSeasons,
			EstimatedDuration: rec.EstimatedDuration,
			ReviewCount:       rec.ReviewCount,
			PriceRange:        rec.PriceRange,
		}

		// Sources that carry only one of rating.count / review_count get
		// both populated so scoring and responses agree.
		if attraction.ReviewCount == 0 {
			attraction.ReviewCount = attraction.Rating.Count
		}
		if attraction.Rating.Count == 0 {
			attraction.Rating.Count = attraction.ReviewCount
		}

		attractions = append(attractions, attraction)
	}

	return attractions, nil
}

// parseLocation decodes coordinates leniently: malformed or out-of-range
// coordinates are treated as "no location", never as a load failure.
func (l *Loader) parseLocation(id string, raw json.RawMessage) *geo.Point {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var loc struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(raw, &loc); err != nil {
		l.logger.Debug().Str("attraction", id).Err(err).Msg("malformed location, treating as absent")
		return nil
	}
	if loc.Lat == nil || loc.Lng == nil {
		l.logger.Debug().Str("attraction", id).Msg("incomplete location, treating as absent")
		return nil
	}

	point := geo.Point{Lat: *loc.Lat, Lng: *loc.Lng}
	if !point.Valid() {
		l.logger.Debug().Str("attraction", id).Float64("lat", point.Lat).Float64("lng", point.Lng).
			Msg("out-of-range location, treating as absent")
		return nil
	}

	return &point
}
