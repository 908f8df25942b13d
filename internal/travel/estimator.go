// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package travel estimates distance and duration between coordinates.
//
// The preferred path batches a full day's stops into one distance-matrix
// lookup against the external routing provider, wrapped in a circuit
// breaker with a bounded timeout. On provider unavailability or failure the
// estimator falls back to haversine distance plus an assumed average speed,
// so estimation never blocks the pipeline and never errors for valid
// coordinates. Per-pair results are cached with a short TTL keyed by
// rounded coordinates.
package travel

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/rmcphail/wayfinder/internal/cache"
	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/metrics"
)

// FallbackSpeedKmh is the assumed average travel speed for the geometric
// fallback estimator.
const FallbackSpeedKmh = 50.0

// DefaultCacheTTL is how long per-pair travel results stay cached.
const DefaultCacheTTL = 15 * time.Minute

// Leg is a travel segment between two stops. Fields are nil when
// coordinates are missing or the pair is unroutable.
type Leg struct {
	DistanceKm      *float64 `json:"distance_km"`
	DurationMinutes *float64 `json:"duration_minutes"`
}

// Estimator computes travel legs with provider batching, caching, and a
// geometric fallback. Safe for concurrent use.
type Estimator struct {
	client  *MatrixClient
	breaker *gobreaker.CircuitBreaker[[][]Leg]
	cache   *cache.Cache
	logger  zerolog.Logger
}

// NewEstimator creates an estimator. client may be unconfigured (or nil),
// in which case every estimate uses the geometric fallback.
func NewEstimator(client *MatrixClient) *Estimator {
	logger := logging.Component("travel")

	breaker := gobreaker.NewCircuitBreaker[[][]Leg](gobreaker.Settings{
		Name:        "routing-provider",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})
	metrics.CircuitBreakerState.WithLabelValues("routing-provider").Set(0)

	return &Estimator{
		client:  client,
		breaker: breaker,
		cache:   cache.New(DefaultCacheTTL),
		logger:  logger,
	}
}

// Estimate returns the travel leg between two coordinates. Either may be
// nil, producing a leg with nil fields. Never returns an error: provider
// failures fall back to the geometric estimate.
func (e *Estimator) Estimate(ctx context.Context, origin, destination *geo.Point) Leg {
	legs := e.EstimateRoute(ctx, origin, []*geo.Point{destination})
	return legs[0]
}

// EstimateRoute returns one leg per stop: stop i's leg is the travel from
// the previous stop (or start, for the first) to stop i. Stops with nil
// coordinates produce legs with nil fields and break the chain: the next
// routable stop measures from the last point with known coordinates.
//
// The whole route is resolved with at most one provider call; on breaker
// rejection, timeout, or provider failure every remaining pair uses the
// haversine fallback.
func (e *Estimator) EstimateRoute(ctx context.Context, start *geo.Point, stops []*geo.Point) []Leg {
	legs := make([]Leg, len(stops))
	if len(stops) == 0 {
		return legs
	}

	// Pair up each routable stop with its effective origin.
	type pair struct {
		index    int
		from, to geo.Point
	}
	var pairs []pair
	previous := start
	for i, stop := range stops {
		if stop == nil {
			continue
		}
		if previous != nil {
			pairs = append(pairs, pair{index: i, from: *previous, to: *stop})
		}
		previous = stop
	}

	// Serve what we can from cache.
	var uncached []pair
	for _, p := range pairs {
		if leg, ok := e.cachedLeg(p.from, p.to); ok {
			legs[p.index] = leg
		} else {
			uncached = append(uncached, p)
		}
	}

	if len(uncached) == 0 {
		return legs
	}

	// One batched provider call for the remaining pairs.
	origins := make([]geo.Point, len(uncached))
	destinations := make([]geo.Point, len(uncached))
	for i, p := range uncached {
		origins[i] = p.from
		destinations[i] = p.to
	}
	resolved := e.lookupPairs(ctx, origins, destinations)
	for i, p := range uncached {
		legs[p.index] = resolved[i]
		e.cache.Set(pairKey(p.from, p.to), resolved[i])
	}

	return legs
}

// lookupPairs resolves origin[i]->destination[i] for each i, via the
// provider when available and the geometric fallback otherwise. The
// provider matrix is requested with the full origin and destination sets;
// only the diagonal is consumed.
func (e *Estimator) lookupPairs(ctx context.Context, origins, destinations []geo.Point) []Leg {
	legs := make([]Leg, len(origins))

	if e.client != nil && e.client.Configured() {
		matrix, err := e.breaker.Execute(func() ([][]Leg, error) {
			m, err := e.client.DistanceMatrix(ctx, origins, destinations)
			if err != nil {
				return nil, err
			}
			if len(m) != len(origins) {
				return nil, fmt.Errorf("%w: malformed matrix shape", ErrMatrixUnavailable)
			}
			for i := range m {
				if len(m[i]) != len(destinations) {
					return nil, fmt.Errorf("%w: malformed matrix row", ErrMatrixUnavailable)
				}
			}
			return m, nil
		})
		if err == nil {
			complete := true
			for i := range legs {
				legs[i] = matrix[i][i]
				if legs[i].DistanceKm == nil {
					complete = false
				}
			}
			if complete {
				return legs
			}
			// Unroutable pairs still get a geometric estimate.
			for i := range legs {
				if legs[i].DistanceKm == nil {
					metrics.ProviderFallbacks.WithLabelValues("routing").Inc()
					legs[i] = fallbackLeg(origins[i], destinations[i])
				}
			}
			return legs
		}
		e.logger.Warn().Err(err).Int("pairs", len(origins)).
			Msg("routing provider unavailable, using geometric fallback")
	}

	for i := range legs {
		metrics.ProviderFallbacks.WithLabelValues("routing").Inc()
		legs[i] = fallbackLeg(origins[i], destinations[i])
	}
	return legs
}

// cachedLeg fetches a cached pair result.
func (e *Estimator) cachedLeg(from, to geo.Point) (Leg, bool) {
	value, ok := e.cache.Get(pairKey(from, to))
	if !ok {
		metrics.CacheMisses.WithLabelValues("travel").Inc()
		return Leg{}, false
	}
	metrics.CacheHits.WithLabelValues("travel").Inc()
	leg, ok := value.(Leg)
	return leg, ok
}

func pairKey(from, to geo.Point) string {
	return "leg:" + from.CacheKey() + ">" + to.CacheKey()
}

// fallbackLeg estimates a pair geometrically: haversine distance at an
// assumed average speed.
func fallbackLeg(from, to geo.Point) Leg {
	distance := round2(geo.Haversine(from, to))
	duration := round1(distance / FallbackSpeedKmh * 60)
	return Leg{DistanceKm: &distance, DurationMinutes: &duration}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
