// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package travel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/metrics"
)

// ErrMatrixUnavailable indicates the routing provider is not configured or
// returned an unusable response. Callers fall back to the geometric
// estimator; this error never reaches API consumers.
var ErrMatrixUnavailable = errors.New("distance matrix unavailable")

// MatrixClientConfig configures the routing provider client.
type MatrixClientConfig struct {
	// BaseURL is the distance-matrix endpoint.
	BaseURL string

	// APIKey authenticates requests. Empty means unconfigured: the
	// estimator will use the geometric fallback exclusively.
	APIKey string

	// Timeout bounds each provider call. Default 10s.
	Timeout time.Duration

	// Mode is the travel mode, e.g. "driving".
	Mode string
}

// MatrixClient fetches travel distance/duration matrices from an external
// routing provider using the Google Distance Matrix wire format.
type MatrixClient struct {
	baseURL    string
	apiKey     string
	mode       string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewMatrixClient creates a routing provider client.
func NewMatrixClient(cfg MatrixClientConfig) *MatrixClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Mode == "" {
		cfg.Mode = "driving"
	}

	return &MatrixClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		mode:       cfg.Mode,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logging.Component("travel.matrix"),
	}
}

// Configured reports whether the client has credentials to call the
// provider.
func (c *MatrixClient) Configured() bool {
	return c != nil && c.apiKey != "" && c.baseURL != ""
}

// matrixResponse mirrors the provider's wire format.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// DistanceMatrix fetches travel legs for all origin/destination pairs in a
// single provider call. The result is indexed [origin][destination];
// unroutable pairs have nil fields.
func (c *MatrixClient) DistanceMatrix(ctx context.Context, origins, destinations []geo.Point) ([][]Leg, error) {
	if !c.Configured() {
		return nil, ErrMatrixUnavailable
	}
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, fmt.Errorf("%w: empty origin or destination set", ErrMatrixUnavailable)
	}

	start := time.Now()

	params := url.Values{}
	params.Set("origins", joinPoints(origins))
	params.Set("destinations", joinPoints(destinations))
	params.Set("mode", c.mode)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build matrix request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("routing").Inc()
		return nil, fmt.Errorf("%w: %w", ErrMatrixUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.ProviderRequestDuration.WithLabelValues("routing").Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrors.WithLabelValues("routing").Inc()
		return nil, fmt.Errorf("%w: provider returned HTTP %d", ErrMatrixUnavailable, resp.StatusCode)
	}

	var payload matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ProviderErrors.WithLabelValues("routing").Inc()
		return nil, fmt.Errorf("%w: decode response: %w", ErrMatrixUnavailable, err)
	}

	if payload.Status != "OK" {
		metrics.ProviderErrors.WithLabelValues("routing").Inc()
		c.logger.Error().Str("status", payload.Status).Msg("distance matrix returned non-OK status")
		return nil, fmt.Errorf("%w: provider status %s", ErrMatrixUnavailable, payload.Status)
	}

	matrix := make([][]Leg, len(payload.Rows))
	for i, row := range payload.Rows {
		legs := make([]Leg, len(row.Elements))
		for j, element := range row.Elements {
			if element.Status != "OK" {
				continue // leave nil fields for unroutable pairs
			}
			distanceKm := round2(element.Distance.Value / 1000)
			durationMin := round1(element.Duration.Value / 60)
			legs[j] = Leg{DistanceKm: &distanceKm, DurationMinutes: &durationMin}
		}
		matrix[i] = legs
	}

	return matrix, nil
}

func joinPoints(points []geo.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%f,%f", p.Lat, p.Lng)
	}
	return strings.Join(parts, "|")
}
