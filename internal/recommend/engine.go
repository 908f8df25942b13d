// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/metrics"
	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/recommend/scoring"
)

// Engine is the hybrid ranking pipeline: content similarity, location
// suitability, and popularity are blended additively, then adjusted by the
// seasonal/weather context multiplier, filtered, stably sorted, and
// truncated to top-k.
//
// The engine is safe for concurrent use. The catalog and fitted content
// matcher live in an immutable snapshot behind a read lock; a reload builds
// the next snapshot off to the side and swaps it in, so in-flight requests
// always see a consistent catalog.
type Engine struct {
	config *Config
	logger zerolog.Logger

	mu    sync.RWMutex
	state *snapshot

	// now is the clock; injectable for deterministic season selection in
	// tests.
	now func() time.Time
}

// snapshot is one immutable catalog generation plus its fitted model state.
type snapshot struct {
	attractions []models.Attraction
	matcher     *scoring.ContentMatcher
	version     int
	loadedAt    time.Time
}

// NewEngine creates a recommendation engine. A nil config uses defaults.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	normalized := *cfg
	normalized.Weights = cfg.Weights.Normalize()

	return &Engine{
		config: &normalized,
		logger: logger.With().Str("component", "recommend").Logger(),
		now:    time.Now,
	}, nil
}

// LoadCatalog fits a new snapshot from the given attractions and swaps it
// in. Safe to call while requests are in flight; they finish against the
// previous snapshot. An empty catalog is a valid (if useless) snapshot —
// the initialization gate only distinguishes "never loaded."
func (e *Engine) LoadCatalog(ctx context.Context, attractions []models.Attraction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	matcher := scoring.NewContentMatcher()
	matcher.Fit(attractions)

	e.mu.Lock()
	version := 1
	if e.state != nil {
		version = e.state.version + 1
	}
	e.state = &snapshot{
		attractions: attractions,
		matcher:     matcher,
		version:     version,
		loadedAt:    e.now(),
	}
	e.mu.Unlock()

	metrics.CatalogSize.Set(float64(len(attractions)))
	e.logger.Info().
		Int("attractions", len(attractions)).
		Int("version", version).
		Msg("catalog snapshot loaded")

	return nil
}

// Initialized reports whether a catalog snapshot has been loaded.
func (e *Engine) Initialized() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state != nil
}

// CatalogSize returns the attraction count of the active snapshot.
func (e *Engine) CatalogSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return 0
	}
	return len(e.state.attractions)
}

// CatalogVersion returns the active snapshot's version, or 0 before the
// first load.
func (e *Engine) CatalogVersion() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state == nil {
		return 0
	}
	return e.state.version
}

// candidate carries per-attraction state through the scoring pipeline.
type candidate struct {
	attraction *models.Attraction
	location   scoring.LocationResult
}

// Recommend runs one ranking pass. weather may be nil (no weather context).
//
// The pass is a pure function of the snapshot, profile, and context: no
// randomness, no retries. Identical inputs produce identical ranked order —
// the final sort is stable, so equal composites preserve catalog insertion
// order.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req models.RecommendationRequest, weather *models.Weather) (*Result, error) {
	start := e.now()

	e.mu.RLock()
	state := e.state
	e.mu.RUnlock()

	if state == nil {
		metrics.RecommendationRequests.WithLabelValues("error").Inc()
		return nil, ErrNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	season := scoring.Season(start)
	result := &Result{
		Season:         season,
		WeatherApplied: weather != nil,
		Algorithm:      "hybrid",
		GeneratedAt:    start,
	}

	if len(state.attractions) == 0 {
		result.Message = "No attraction data is available."
		metrics.RecommendationRequests.WithLabelValues("degraded").Inc()
		return result, nil
	}

	topK := req.TopK
	if topK <= 0 {
		topK = e.config.DefaultTopK
	}
	if topK > e.config.MaxTopK {
		topK = e.config.MaxTopK
	}

	candidates, distanceFiltered := e.filterCandidates(state, &req)
	if len(candidates) == 0 {
		result.Message = degradedMessage(&req, distanceFiltered)
		metrics.RecommendationRequests.WithLabelValues("degraded").Inc()
		e.logger.Debug().
			Str("user", req.UserID).
			Int("distance_filtered", distanceFiltered).
			Msg("no candidates after filtering")
		return result, nil
	}
	result.Eligible = len(candidates)

	contentScores := e.contentScores(state, &req.Preferences, season)
	popularityScores := e.popularityScores(candidates)

	scored := e.composite(candidates, contentScores, popularityScores, season, weather)

	// Stable sort keeps catalog insertion order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Composite > scored[j].Composite
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}

	for i := range scored {
		scored[i].Reasons = buildReasons(&scored[i], &req.Preferences)
	}

	result.Candidates = scored
	metrics.RecommendationRequests.WithLabelValues("ok").Inc()
	metrics.RecommendationsReturned.Observe(float64(len(scored)))
	metrics.ObserveScoringStage("total", start)

	e.logger.Debug().
		Str("user", req.UserID).
		Int("eligible", result.Eligible).
		Int("returned", len(scored)).
		Str("season", season).
		Msg("recommendation pass complete")

	return result, nil
}

// filterCandidates applies the visited-exclusion, preference, and distance
// gates, attaching location results along the way. Returns the surviving
// candidates and how many were removed by the distance cutoff alone.
func (e *Engine) filterCandidates(state *snapshot, req *models.RecommendationRequest) ([]candidate, int) {
	excluded := make(map[string]struct{}, len(req.ExcludeVisited))
	for _, id := range req.ExcludeVisited {
		excluded[id] = struct{}{}
	}

	candidates := make([]candidate, 0, len(state.attractions))
	distanceFiltered := 0

	for i := range state.attractions {
		attraction := &state.attractions[i]

		if _, skip := excluded[attraction.ID]; skip {
			continue
		}
		if !scoring.PassesFilters(attraction, &req.Preferences) {
			continue
		}

		loc := scoring.ScoreLocation(attraction.Location, requestOrigin(req), req.Preferences.MaxTravelDistance)
		if loc.Excluded {
			distanceFiltered++
			continue
		}

		candidates = append(candidates, candidate{attraction: attraction, location: loc})
	}

	return candidates, distanceFiltered
}

// contentScores runs the fitted matcher; degraded modes return nil.
func (e *Engine) contentScores(state *snapshot, prefs *models.UserPreferences, season string) map[string]float64 {
	start := e.now()
	defer metrics.ObserveScoringStage("content", start)

	if !state.matcher.Fitted() {
		e.logger.Warn().Msg("content matcher not fitted, skipping content component")
		return nil
	}

	scores := state.matcher.Score(prefs, season)
	if scores == nil {
		e.logger.Debug().Msg("empty profile term bag, content component skipped")
	}
	return scores
}

func (e *Engine) popularityScores(candidates []candidate) map[string]float64 {
	start := e.now()
	defer metrics.ObserveScoringStage("popularity", start)

	attractions := make([]*models.Attraction, len(candidates))
	for i := range candidates {
		attractions[i] = candidates[i].attraction
	}
	return scoring.PopularityScores(attractions)
}

// composite blends the additive components and applies the context
// multiplier, clamping the result to [0, 1].
func (e *Engine) composite(
	candidates []candidate,
	contentScores, popularityScores map[string]float64,
	season string,
	weather *models.Weather,
) []ScoredCandidate {
	weights := e.config.Weights

	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		id := c.attraction.ID

		content := contentScores[id]
		popularity := popularityScores[id]
		location := c.location.Score

		composite := weights.Content*content +
			weights.Location*location +
			weights.Popularity*popularity

		multiplier := scoring.ContextMultiplier(c.attraction, season, weather)
		composite *= multiplier

		if composite > 1 {
			composite = 1
		}
		if composite < 0 {
			composite = 0
		}

		scored = append(scored, ScoredCandidate{
			Attraction:        c.attraction,
			Composite:         composite,
			ContentScore:      content,
			LocationScore:     location,
			PopularityScore:   popularity,
			ContextMultiplier: multiplier,
			DistanceKm:        c.location.DistanceKm,
			WeatherSuitable:   scoring.WeatherSuitable(c.attraction, weather),
		})
	}

	return scored
}

// requestOrigin extracts the traveler's coordinates, or nil when no
// location was provided.
func requestOrigin(req *models.RecommendationRequest) *geo.Point {
	if req.CurrentLocation == nil {
		return nil
	}
	return &geo.Point{Lat: req.CurrentLocation.Lat, Lng: req.CurrentLocation.Lng}
}

// degradedMessage explains an empty candidate set: "no data" reads
// differently from "filtered to empty by distance."
func degradedMessage(req *models.RecommendationRequest, distanceFiltered int) string {
	if distanceFiltered > 0 && req.CurrentLocation != nil {
		return fmt.Sprintf(
			"No attractions within %.0f km of your location. Try increasing max_travel_distance.",
			req.Preferences.MaxTravelDistance,
		)
	}
	return "No attractions match your preferences."
}
