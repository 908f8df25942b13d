// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	// Fixed clock for deterministic season selection (January = summer).
	engine.now = func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	}
	return engine
}

func testAttractions() []models.Attraction {
	return []models.Attraction{
		{
			ID:          "WLG_MUSEUM",
			Name:        "Te Papa",
			Description: "National museum with interactive exhibitions",
			Categories:  []string{"cultural", "family"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.2905, Lng: 174.7821},
			Features:    models.Features{Difficulty: "easy", IsOutdoor: false},
			Rating:      models.Rating{Average: 4.7, Count: 1500},
			BestSeasons: []string{"all"},
		},
		{
			ID:          "WLG_SANCTUARY",
			Name:        "Zealandia",
			Description: "Urban wildlife sanctuary with native birds",
			Categories:  []string{"natural", "family"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.2896, Lng: 174.7526},
			Features:    models.Features{Difficulty: "easy", IsOutdoor: true},
			Rating:      models.Rating{Average: 4.8, Count: 900},
			BestSeasons: []string{"spring", "summer"},
		},
		{
			ID:          "AKL_VOLCANO",
			Name:        "Rangitoto Summit",
			Description: "Volcanic island hiking with harbour views",
			Categories:  []string{"natural", "adventure"},
			Region:      "Auckland",
			Location:    &geo.Point{Lat: -36.7866, Lng: 174.8602},
			Features:    models.Features{Difficulty: "medium", IsOutdoor: true},
			Rating:      models.Rating{Average: 4.6, Count: 600},
			BestSeasons: []string{"summer"},
		},
		{
			ID:          "NO_COORDS",
			Name:        "Hidden Gallery",
			Description: "Small private art gallery",
			Categories:  []string{"cultural"},
			Features:    models.Features{IsOutdoor: false},
			Rating:      models.Rating{Average: 4.0, Count: 50},
		},
	}
}

func loadTestCatalog(t *testing.T, engine *Engine) {
	t.Helper()
	if err := engine.LoadCatalog(context.Background(), testAttractions()); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
}

func baseRequest() models.RecommendationRequest {
	req := models.RecommendationRequest{
		UserID: "traveler-1",
		Preferences: models.UserPreferences{
			ActivityTypes: []string{"natural", "cultural"},
		},
	}
	req.ApplyDefaults()
	return req
}

func TestRecommendRequiresCatalog(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Recommend() error = %v, want ErrNotInitialized", err)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.LoadCatalog(context.Background(), nil); err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	result, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !result.Degraded() {
		t.Error("empty catalog should produce a degraded result")
	}
	if !strings.Contains(result.Message, "No attraction data") {
		t.Errorf("Message = %q, want no-data explanation", result.Message)
	}
}

func TestRecommendRanking(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	result, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if result.Degraded() {
		t.Fatalf("unexpected degraded result: %s", result.Message)
	}
	if result.Season != "summer" {
		t.Errorf("Season = %q, want summer", result.Season)
	}
	if result.Algorithm != "hybrid" {
		t.Errorf("Algorithm = %q, want hybrid", result.Algorithm)
	}
	if len(result.Candidates) != 4 {
		t.Fatalf("returned %d candidates, want 4", len(result.Candidates))
	}

	for i, c := range result.Candidates {
		if c.Composite < 0 || c.Composite > 1 {
			t.Errorf("candidate %d composite = %.4f, want within [0, 1]", i, c.Composite)
		}
		if len(c.Reasons) == 0 || len(c.Reasons) > 3 {
			t.Errorf("candidate %d has %d reasons, want 1-3", i, len(c.Reasons))
		}
		if i > 0 && result.Candidates[i-1].Composite < c.Composite {
			t.Errorf("candidates not sorted: [%d]=%.4f < [%d]=%.4f",
				i-1, result.Candidates[i-1].Composite, i, c.Composite)
		}
	}
}

func TestRecommendDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	first, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Candidates) != len(second.Candidates) {
		t.Fatalf("candidate counts differ: %d vs %d", len(first.Candidates), len(second.Candidates))
	}
	for i := range first.Candidates {
		if first.Candidates[i].Attraction.ID != second.Candidates[i].Attraction.ID {
			t.Errorf("rank %d differs: %s vs %s", i,
				first.Candidates[i].Attraction.ID, second.Candidates[i].Attraction.ID)
		}
		if first.Candidates[i].Composite != second.Candidates[i].Composite {
			t.Errorf("rank %d score differs: %.9f vs %.9f", i,
				first.Candidates[i].Composite, second.Candidates[i].Composite)
		}
	}
}

func TestRecommendExcludeVisited(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	req := baseRequest()
	req.ExcludeVisited = []string{"WLG_MUSEUM", "AKL_VOLCANO"}

	result, err := engine.Recommend(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range result.Candidates {
		if c.Attraction.ID == "WLG_MUSEUM" || c.Attraction.ID == "AKL_VOLCANO" {
			t.Errorf("excluded attraction %s appeared in results", c.Attraction.ID)
		}
	}
	if len(result.Candidates) != 2 {
		t.Errorf("returned %d candidates, want 2", len(result.Candidates))
	}
}

func TestRecommendTopK(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	req := baseRequest()
	req.TopK = 2

	result, err := engine.Recommend(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 2 {
		t.Errorf("returned %d candidates, want 2", len(result.Candidates))
	}
	if result.Eligible != 4 {
		t.Errorf("Eligible = %d, want 4", result.Eligible)
	}
}

func TestRecommendDistanceCutoff(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	req := baseRequest()
	req.CurrentLocation = &models.Location{Lat: -41.2924, Lng: 174.7787}
	req.Preferences.MaxTravelDistance = 50

	result, err := engine.Recommend(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range result.Candidates {
		if c.Attraction.ID == "AKL_VOLCANO" {
			t.Error("attraction ~500 km away survived a 50 km cutoff")
		}
		if c.DistanceKm != nil && *c.DistanceKm > 50 {
			t.Errorf("candidate %s at %.1f km exceeds the cutoff", c.Attraction.ID, *c.DistanceKm)
		}
	}

	// The coordinate-less attraction is retained with the fallback score.
	found := false
	for _, c := range result.Candidates {
		if c.Attraction.ID == "NO_COORDS" {
			found = true
			if c.LocationScore != 0.3 {
				t.Errorf("NO_COORDS location score = %.2f, want 0.3", c.LocationScore)
			}
		}
	}
	if !found {
		t.Error("attraction without coordinates should not be distance-filtered")
	}
}

func TestRecommendAllFilteredByDistance(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.LoadCatalog(context.Background(), []models.Attraction{
		{
			ID:         "FAR",
			Name:       "Far Away",
			Categories: []string{"natural"},
			Location:   &geo.Point{Lat: -36.8485, Lng: 174.7633},
		},
	}); err != nil {
		t.Fatal(err)
	}

	req := baseRequest()
	req.CurrentLocation = &models.Location{Lat: -41.2924, Lng: 174.7787}
	req.Preferences.MaxTravelDistance = 5

	result, err := engine.Recommend(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Degraded() {
		t.Fatal("expected degraded result when everything is beyond the cutoff")
	}
	if !strings.Contains(result.Message, "max_travel_distance") {
		t.Errorf("Message = %q, want distance-cutoff explanation", result.Message)
	}
}

func TestRecommendNoPreferenceMatches(t *testing.T) {
	engine := newTestEngine(t)
	if err := engine.LoadCatalog(context.Background(), []models.Attraction{
		{
			ID:         "PRICEY",
			Name:       "Exclusive Lodge",
			Categories: []string{"luxury"},
			Features:   models.Features{PriceLevel: 5},
		},
	}); err != nil {
		t.Fatal(err)
	}

	req := baseRequest()
	req.Preferences.BudgetRange = []float64{1, 2}

	result, err := engine.Recommend(context.Background(), req, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Degraded() {
		t.Fatal("expected degraded result when filters remove everything")
	}
	if !strings.Contains(result.Message, "match your preferences") {
		t.Errorf("Message = %q, want preference explanation", result.Message)
	}
}

func TestRecommendWeatherContext(t *testing.T) {
	engine := newTestEngine(t)
	loadTestCatalog(t, engine)

	rain := &models.Weather{Condition: "rain", Temperature: 12}
	result, err := engine.Recommend(context.Background(), baseRequest(), rain)
	if err != nil {
		t.Fatal(err)
	}
	if !result.WeatherApplied {
		t.Error("WeatherApplied = false with weather context")
	}

	for _, c := range result.Candidates {
		if c.Attraction.Features.IsOutdoor && c.WeatherSuitable {
			t.Errorf("outdoor attraction %s marked suitable in rain", c.Attraction.ID)
		}
		if !c.Attraction.Features.IsOutdoor && !c.WeatherSuitable {
			t.Errorf("indoor attraction %s marked unsuitable in rain", c.Attraction.ID)
		}
	}
}

func TestRecommendStableTieOrder(t *testing.T) {
	engine := newTestEngine(t)

	// Identical attractions produce identical composites; stable sort must
	// preserve catalog insertion order.
	twin := func(id string) models.Attraction {
		return models.Attraction{
			ID:         id,
			Name:       "Twin",
			Categories: []string{"natural"},
			Rating:     models.Rating{Average: 4.0, Count: 100},
		}
	}
	if err := engine.LoadCatalog(context.Background(),
		[]models.Attraction{twin("FIRST"), twin("SECOND"), twin("THIRD")}); err != nil {
		t.Fatal(err)
	}

	result, err := engine.Recommend(context.Background(), baseRequest(), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"FIRST", "SECOND", "THIRD"}
	for i, c := range result.Candidates {
		if c.Attraction.ID != want[i] {
			t.Errorf("rank %d = %s, want %s (insertion order for ties)", i, c.Attraction.ID, want[i])
		}
	}
}

func TestLoadCatalogVersioning(t *testing.T) {
	engine := newTestEngine(t)

	if engine.Initialized() {
		t.Error("Initialized() = true before first load")
	}
	if engine.CatalogVersion() != 0 {
		t.Errorf("CatalogVersion() = %d before first load, want 0", engine.CatalogVersion())
	}

	loadTestCatalog(t, engine)
	if !engine.Initialized() {
		t.Error("Initialized() = false after load")
	}
	if engine.CatalogVersion() != 1 {
		t.Errorf("CatalogVersion() = %d, want 1", engine.CatalogVersion())
	}
	if engine.CatalogSize() != 4 {
		t.Errorf("CatalogSize() = %d, want 4", engine.CatalogSize())
	}

	loadTestCatalog(t, engine)
	if engine.CatalogVersion() != 2 {
		t.Errorf("CatalogVersion() = %d after reload, want 2", engine.CatalogVersion())
	}
}
