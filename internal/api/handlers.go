// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/catalog"
	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/itinerary"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/metrics"
	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/recommend"
	"github.com/rmcphail/wayfinder/internal/validation"
	"github.com/rmcphail/wayfinder/internal/weather"
)

// maxRequestBody caps inbound request bodies at 1 MiB.
const maxRequestBody = 1 << 20

// Handler holds the dependencies for all API endpoints.
type Handler struct {
	engine      *recommend.Engine
	builder     *itinerary.Builder
	weather     *weather.Client
	loader      *catalog.Loader
	catalogPath string
	version     string
	startTime   time.Time
	logger      zerolog.Logger
}

// NewHandler creates a handler. catalogPath may be empty, in which case
// catalog reloads fall back to the built-in sample catalog.
func NewHandler(engine *recommend.Engine, builder *itinerary.Builder, wx *weather.Client, loader *catalog.Loader, catalogPath, version string) *Handler {
	return &Handler{
		engine:      engine,
		builder:     builder,
		weather:     wx,
		loader:      loader,
		catalogPath: catalogPath,
		version:     version,
		startTime:   time.Now(),
		logger:      logging.Component("api"),
	}
}

// decodeRequest decodes and validates a recommendation request, applying
// defaults. Returns false after writing an error response on failure.
func (h *Handler) decodeRequest(rw *ResponseWriter, r *http.Request, req *models.RecommendationRequest) bool {
	r.Body = http.MaxBytesReader(rw.w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		rw.BadRequest("invalid JSON request body")
		return false
	}

	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}

	req.ApplyDefaults()
	return true
}

// currentWeather fetches conditions at the request's location, best-effort.
func (h *Handler) currentWeather(r *http.Request, req *models.RecommendationRequest) *models.Weather {
	if h.weather == nil || req.CurrentLocation == nil {
		return nil
	}
	point := &geo.Point{Lat: req.CurrentLocation.Lat, Lng: req.CurrentLocation.Lng}
	return h.weather.Current(r.Context(), point)
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req models.RecommendationRequest
	if !h.decodeRequest(rw, r, &req) {
		return
	}

	wx := h.currentWeather(r, &req)
	result, err := h.engine.Recommend(r.Context(), req, wx)
	if err != nil {
		if errors.Is(err, recommend.ErrNotInitialized) {
			rw.ServiceUnavailable("recommendation engine is not ready: no catalog loaded")
			return
		}
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("recommendation failed")
		rw.InternalError("failed to generate recommendations")
		return
	}

	rw.Success(buildRecommendationResponse(result, &req))
}

// itineraryRequest extends the recommendation request with trip scheduling.
type itineraryRequest struct {
	models.RecommendationRequest

	// StartDate is the first day of the trip, "2006-01-02". Defaults to
	// tomorrow.
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Itinerary handles POST /api/v1/itinerary.
func (h *Handler) Itinerary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON request body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	req.ApplyDefaults()

	var startDate time.Time
	if req.StartDate != "" {
		startDate, _ = time.Parse("2006-01-02", req.StartDate)
	}

	wx := h.currentWeather(r, &req.RecommendationRequest)
	result, err := h.engine.Recommend(r.Context(), req.RecommendationRequest, wx)
	if err != nil {
		if errors.Is(err, recommend.ErrNotInitialized) {
			rw.ServiceUnavailable("recommendation engine is not ready: no catalog loaded")
			return
		}
		h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("itinerary ranking failed")
		rw.InternalError("failed to generate itinerary")
		return
	}

	recommendations := buildRecommendations(result)
	plan := h.builder.Build(r.Context(), itinerary.Request{
		Recommendations: recommendations,
		DurationDays:    req.Preferences.Duration,
		StartDate:       startDate,
		StartLocation:   requestPoint(&req.RecommendationRequest),
		Weather:         wx,
	})

	rw.Success(itineraryResponse{
		Plan:            plan,
		Recommendations: recommendations,
		Context:         buildContext(result, &req.RecommendationRequest),
	})
}

// itineraryResponse is the outbound itinerary payload: the plan plus the
// ranked list it was built from.
type itineraryResponse struct {
	itinerary.Plan
	Recommendations []models.Recommendation      `json:"recommendations"`
	Context         models.RecommendationContext `json:"context"`
}

// CatalogReload handles POST /api/v1/catalog/reload.
func (h *Handler) CatalogReload(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var attractions []models.Attraction
	var err error
	source := "sample"
	if h.catalogPath != "" {
		source = h.catalogPath
		attractions, err = h.loader.LoadFile(h.catalogPath)
	} else {
		attractions = catalog.Sample()
	}
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Str("source", source).Msg("catalog reload failed")
		rw.InternalError("catalog reload failed: " + err.Error())
		return
	}

	if err := h.engine.LoadCatalog(r.Context(), attractions); err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Str("source", source).Msg("catalog swap failed")
		rw.InternalError("catalog reload failed: " + err.Error())
		return
	}

	rw.Success(map[string]any{
		"source":      source,
		"attractions": h.engine.CatalogSize(),
		"version":     h.engine.CatalogVersion(),
	})
}

// buildRecommendationResponse converts a ranking result to the wire shape.
func buildRecommendationResponse(result *recommend.Result, req *models.RecommendationRequest) models.RecommendationResponse {
	recommendations := buildRecommendations(result)
	return models.RecommendationResponse{
		Recommendations: recommendations,
		TotalCount:      len(recommendations),
		AlgorithmUsed:   result.Algorithm,
		Context:         buildContext(result, req),
		GeneratedAt:     result.GeneratedAt,
	}
}

func buildContext(result *recommend.Result, req *models.RecommendationRequest) models.RecommendationContext {
	return models.RecommendationContext{
		LocationProvided: req.CurrentLocation != nil,
		ExcludedCount:    len(req.ExcludeVisited),
		Season:           result.Season,
		WeatherApplied:   result.WeatherApplied,
		Message:          result.Message,
	}
}

func buildRecommendations(result *recommend.Result) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, len(result.Candidates))
	for i := range result.Candidates {
		c := &result.Candidates[i]
		a := c.Attraction
		recommendations = append(recommendations, models.Recommendation{
			ID:              a.ID,
			Name:            a.Name,
			Description:     a.Description,
			Category:        a.PrimaryCategory(),
			Categories:      a.Categories,
			Location:        a.Location,
			Rating:          a.Rating,
			ConfidenceScore: c.Composite,
			Reasons:         c.Reasons,
			DistanceKm:      c.DistanceKm,
			PriceRange:      a.PriceRange,
			EstimatedTime:   a.EstimatedDuration,
			WeatherSuitable: c.WeatherSuitable,
			Features:        a.Features,
		})
	}
	return recommendations
}

func requestPoint(req *models.RecommendationRequest) *geo.Point {
	if req.CurrentLocation == nil {
		return nil
	}
	return &geo.Point{Lat: req.CurrentLocation.Lat, Lng: req.CurrentLocation.Lng}
}
