// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package weather fetches current conditions for a coordinate.
//
// Weather is strictly best-effort: any failure (unconfigured provider,
// timeout, bad payload) yields nil conditions and the recommendation
// pipeline proceeds without weather adjustment. Results are cached with a
// short TTL keyed by rounded coordinates.
package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/cache"
	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/metrics"
	"github.com/rmcphail/wayfinder/internal/models"
)

// DefaultCacheTTL is how long fetched conditions stay cached.
const DefaultCacheTTL = 15 * time.Minute

const defaultTimeout = 10 * time.Second

// ClientConfig configures the weather provider.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches current conditions from an OpenWeather-compatible API.
// Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   *cache.Cache
	logger  zerolog.Logger
}

// NewClient creates a weather client. An empty APIKey or BaseURL leaves the
// client unconfigured; Current then always returns nil.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(DefaultCacheTTL),
		logger:  logging.Component("weather"),
	}
}

// Configured reports whether the provider can be called.
func (c *Client) Configured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// conditionsPayload mirrors the provider's current-conditions response.
type conditionsPayload struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns conditions at the given point, or nil when the provider
// is unconfigured, the point is nil, or the lookup fails.
func (c *Client) Current(ctx context.Context, point *geo.Point) *models.Weather {
	if !c.Configured() || point == nil || !point.Valid() {
		return nil
	}

	key := "wx:" + point.CacheKey()
	if value, ok := c.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("weather").Inc()
		if w, ok := value.(*models.Weather); ok {
			return w
		}
	}
	metrics.CacheMisses.WithLabelValues("weather").Inc()

	w, err := c.fetch(ctx, *point)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("weather").Inc()
		c.logger.Warn().Err(err).
			Float64("lat", point.Lat).
			Float64("lng", point.Lng).
			Msg("weather lookup failed, continuing without conditions")
		return nil
	}

	c.cache.Set(key, w)
	return w
}

func (c *Client) fetch(ctx context.Context, point geo.Point) (*models.Weather, error) {
	start := time.Now()
	defer func() {
		metrics.ProviderRequestDuration.WithLabelValues("weather").Observe(time.Since(start).Seconds())
	}()

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", point.Lat))
	params.Set("lon", fmt.Sprintf("%f", point.Lng))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %d", resp.StatusCode)
	}

	var payload conditionsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	w := &models.Weather{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Source:      "openweather",
	}
	if len(payload.Weather) > 0 {
		w.Condition = strings.ToLower(payload.Weather[0].Main)
		w.Description = payload.Weather[0].Description
	}
	w.SuitableForOutdoor = !w.Adverse()
	return w, nil
}
