// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package config loads application configuration with layered sources:
// built-in defaults, an optional YAML config file, and environment
// variables, in increasing precedence. Config is immutable after Load and
// safe for concurrent reads.
package config

import (
	"fmt"
	"time"

	"github.com/rmcphail/wayfinder/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Routing   RoutingConfig   `koanf:"routing"`
	Weather   WeatherConfig   `koanf:"weather"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig holds attraction catalog settings.
type CatalogConfig struct {
	// Path is the attraction catalog JSON file. Empty loads the built-in
	// sample catalog.
	Path string `koanf:"path"`
}

// RecommendConfig holds scoring weights for the ranking pipeline.
type RecommendConfig struct {
	ContentWeight    float64 `koanf:"content_weight"`
	LocationWeight   float64 `koanf:"location_weight"`
	PopularityWeight float64 `koanf:"popularity_weight"`
	MaxTopK          int     `koanf:"max_top_k"`
}

// Weights converts the configured weights to the engine's form.
func (r RecommendConfig) Weights() recommend.Weights {
	return recommend.Weights{
		Content:    r.ContentWeight,
		Location:   r.LocationWeight,
		Popularity: r.PopularityWeight,
	}
}

// RoutingConfig holds the external distance-matrix provider settings.
// An empty APIKey disables the provider; travel estimation then uses the
// geometric fallback exclusively.
type RoutingConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
	Mode    string        `koanf:"mode"`
}

// WeatherConfig holds the external weather provider settings. An empty
// APIKey disables weather context entirely.
type WeatherConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

// APIConfig holds API surface settings.
type APIConfig struct {
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for malformed values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Recommend.ContentWeight < 0 || c.Recommend.LocationWeight < 0 || c.Recommend.PopularityWeight < 0 {
		return fmt.Errorf("recommend weights must be non-negative")
	}
	if c.Recommend.MaxTopK < 1 {
		return fmt.Errorf("recommend.max_top_k must be at least 1, got %d", c.Recommend.MaxTopK)
	}
	if c.API.RateLimit < 1 {
		return fmt.Errorf("api.rate_limit must be at least 1, got %d", c.API.RateLimit)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
