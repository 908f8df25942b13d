// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/catalog"
	"github.com/rmcphail/wayfinder/internal/itinerary"
	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/recommend"
	"github.com/rmcphail/wayfinder/internal/travel"
	"github.com/rmcphail/wayfinder/internal/weather"
)

// envelope mirrors APIResponse for decoding in assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
	Meta    *APIMeta        `json:"meta,omitempty"`
}

func newTestServer(t *testing.T, loadCatalog bool) *httptest.Server {
	t.Helper()

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if loadCatalog {
		if err := engine.LoadCatalog(context.Background(), catalog.Sample()); err != nil {
			t.Fatalf("LoadCatalog: %v", err)
		}
	}

	handler := NewHandler(
		engine,
		itinerary.NewBuilder(travel.NewEstimator(nil)),
		weather.NewClient(weather.ClientConfig{}),
		catalog.NewLoader(),
		"",
		"test",
	)

	server := httptest.NewServer(NewRouter(handler, RouterConfig{}).Setup())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url, body string) (*http.Response, envelope) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, env
}

const validRequestBody = `{
	"user_id": "traveler-1",
	"preferences": {
		"activity_types": ["natural", "cultural"],
		"duration": 3
	},
	"top_k": 5
}`

func TestRecommendationsEndpoint(t *testing.T) {
	server := newTestServer(t, true)

	resp, env := postJSON(t, server.URL+"/api/v1/recommendations", validRequestBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("success = false, error = %+v", env.Error)
	}
	if env.Meta == nil || env.Meta.RequestID == "" {
		t.Error("meta should carry a request id")
	}

	var data models.RecommendationResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.TotalCount == 0 || len(data.Recommendations) == 0 {
		t.Fatal("expected recommendations from the sample catalog")
	}
	if data.TotalCount > 5 {
		t.Errorf("TotalCount = %d, want at most top_k=5", data.TotalCount)
	}
	for _, rec := range data.Recommendations {
		if rec.ConfidenceScore < 0 || rec.ConfidenceScore > 1 {
			t.Errorf("%s: confidence %v out of [0,1]", rec.ID, rec.ConfidenceScore)
		}
		if len(rec.Reasons) == 0 {
			t.Errorf("%s: no reasons", rec.ID)
		}
	}
}

func TestRecommendationsValidation(t *testing.T) {
	server := newTestServer(t, true)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{"user_id":`, ErrCodeBadRequest},
		{"missing user_id", `{"preferences": {"activity_types": ["natural"]}}`, ErrCodeValidationFailed},
		{"empty activity types", `{"user_id": "u1", "preferences": {"activity_types": []}}`, ErrCodeValidationFailed},
		{"top_k too large", `{"user_id": "u1", "preferences": {"activity_types": ["natural"]}, "top_k": 500}`, ErrCodeValidationFailed},
		{"bad latitude", `{"user_id": "u1", "preferences": {"activity_types": ["natural"]}, "current_location": {"lat": 95, "lng": 0}}`, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := postJSON(t, server.URL+"/api/v1/recommendations", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			if env.Success {
				t.Error("success should be false")
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommendationsWithoutCatalog(t *testing.T) {
	server := newTestServer(t, false)

	resp, env := postJSON(t, server.URL+"/api/v1/recommendations", validRequestBody)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeServiceUnavailable)
	}
}

func TestItineraryEndpoint(t *testing.T) {
	server := newTestServer(t, true)

	body := `{
		"user_id": "traveler-1",
		"preferences": {
			"activity_types": ["natural", "cultural"],
			"duration": 2
		},
		"top_k": 6,
		"start_date": "2026-09-10"
	}`

	resp, env := postJSON(t, server.URL+"/api/v1/itinerary", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("success = false, error = %+v", env.Error)
	}

	var data struct {
		ID              string                  `json:"itinerary_id"`
		Days            []itinerary.DayPlan     `json:"days"`
		Summary         itinerary.Summary       `json:"summary"`
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	if data.ID == "" {
		t.Error("plan should have an id")
	}
	if len(data.Days) == 0 || len(data.Days) > 2 {
		t.Fatalf("got %d days, want 1-2", len(data.Days))
	}
	if data.Days[0].Date != "2026-09-10" {
		t.Errorf("first day date = %q, want 2026-09-10", data.Days[0].Date)
	}
	if data.Summary.TotalAttractions == 0 {
		t.Error("summary should count scheduled attractions")
	}
	if len(data.Recommendations) == 0 {
		t.Error("response should include the ranked list")
	}
}

func TestItineraryRejectsBadStartDate(t *testing.T) {
	server := newTestServer(t, true)

	body := `{
		"user_id": "traveler-1",
		"preferences": {"activity_types": ["natural"]},
		"start_date": "10/09/2026"
	}`

	resp, env := postJSON(t, server.URL+"/api/v1/itinerary", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("error = %+v, want code %s", env.Error, ErrCodeValidationFailed)
	}
}

func TestCatalogReloadEndpoint(t *testing.T) {
	server := newTestServer(t, false)

	resp, env := postJSON(t, server.URL+"/api/v1/catalog/reload", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !env.Success {
		t.Fatalf("success = false, error = %+v", env.Error)
	}

	var data struct {
		Source      string `json:"source"`
		Attractions int    `json:"attractions"`
		Version     int    `json:"version"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Source != "sample" {
		t.Errorf("source = %q, want sample", data.Source)
	}
	if data.Attractions == 0 {
		t.Error("reload should load the sample catalog")
	}
	if data.Version != 1 {
		t.Errorf("version = %d, want 1 after first load", data.Version)
	}

	// The engine is now ready.
	readyResp, err := http.Get(server.URL + "/api/v1/health/ready")
	if err != nil {
		t.Fatalf("GET ready: %v", err)
	}
	readyResp.Body.Close()
	if readyResp.StatusCode != http.StatusOK {
		t.Errorf("ready after reload = %d, want 200", readyResp.StatusCode)
	}
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("degraded without catalog", func(t *testing.T) {
		server := newTestServer(t, false)

		resp, env := getJSON(t, server.URL+"/api/v1/health")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var status healthStatus
		if err := json.Unmarshal(env.Data, &status); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if status.Status != "degraded" {
			t.Errorf("status = %q, want degraded", status.Status)
		}
		if status.CatalogLoaded {
			t.Error("catalog_loaded should be false")
		}

		ready, _ := getJSON(t, server.URL+"/api/v1/health/ready")
		if ready.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("ready status = %d, want 503", ready.StatusCode)
		}

		live, _ := getJSON(t, server.URL+"/api/v1/health/live")
		if live.StatusCode != http.StatusOK {
			t.Errorf("live status = %d, want 200", live.StatusCode)
		}
	})

	t.Run("ok with catalog", func(t *testing.T) {
		server := newTestServer(t, true)

		resp, env := getJSON(t, server.URL+"/api/v1/health")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var status healthStatus
		if err := json.Unmarshal(env.Data, &status); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if status.Status != "ok" {
			t.Errorf("status = %q, want ok", status.Status)
		}
		if status.CatalogSize == 0 {
			t.Error("catalog_size should be positive")
		}
		if status.Version != "test" {
			t.Errorf("version = %q, want test", status.Version)
		}
		if status.WeatherEnabled {
			t.Error("weather_enabled should be false for unconfigured client")
		}
	})
}

func TestRequestIDPropagation(t *testing.T) {
	server := newTestServer(t, true)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/recommendations", strings.NewReader(validRequestBody))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "trace-me-123")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "trace-me-123" {
		t.Errorf("X-Request-ID header = %q, want echo of the caller's id", got)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Meta == nil || env.Meta.RequestID != "trace-me-123" {
		t.Errorf("meta request id = %+v, want trace-me-123", env.Meta)
	}
}

func getJSON(t *testing.T, url string) (*http.Response, envelope) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, env
}
