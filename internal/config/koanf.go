// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfinder/config.yaml",
	"/etc/wayfinder/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces all environment variable overrides.
const envPrefix = "WAYFINDER_"

// defaultConfig returns the built-in defaults, applied first and then
// overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8087,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Recommend: RecommendConfig{
			ContentWeight:    0.5,
			LocationWeight:   0.3,
			PopularityWeight: 0.2,
			MaxTopK:          100,
		},
		Routing: RoutingConfig{
			BaseURL: "https://maps.googleapis.com/maps/api/distancematrix/json",
			APIKey:  "",
			Timeout: 10 * time.Second,
			Mode:    "driving",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5",
			APIKey:  "",
			Timeout: 10 * time.Second,
		},
		API: APIConfig{
			RateLimit:       300,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using koanf with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if found)
//  3. Environment variables: WAYFINDER_* overrides (highest priority)
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// WAYFINDER_SERVER_PORT -> server.port, WAYFINDER_ROUTING_API_KEY ->
	// routing.api_key, and so on.
	envProvider := env.Provider(envPrefix, ".", envTransform)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, or empty.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envKeyPaths maps environment variable suffixes (after the prefix) to
// config paths. Nested keys contain underscores, so the mapping is explicit
// rather than derived by splitting.
var envKeyPaths = map[string]string{
	"SERVER_HOST":                 "server.host",
	"SERVER_PORT":                 "server.port",
	"SERVER_READ_TIMEOUT":         "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":        "server.write_timeout",
	"SERVER_SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"CATALOG_PATH":                "catalog.path",
	"RECOMMEND_CONTENT_WEIGHT":    "recommend.content_weight",
	"RECOMMEND_LOCATION_WEIGHT":   "recommend.location_weight",
	"RECOMMEND_POPULARITY_WEIGHT": "recommend.popularity_weight",
	"RECOMMEND_MAX_TOP_K":         "recommend.max_top_k",
	"ROUTING_BASE_URL":            "routing.base_url",
	"ROUTING_API_KEY":             "routing.api_key",
	"ROUTING_TIMEOUT":             "routing.timeout",
	"ROUTING_MODE":                "routing.mode",
	"WEATHER_BASE_URL":            "weather.base_url",
	"WEATHER_API_KEY":             "weather.api_key",
	"WEATHER_TIMEOUT":             "weather.timeout",
	"API_RATE_LIMIT":              "api.rate_limit",
	"API_RATE_LIMIT_WINDOW":       "api.rate_limit_window",
	"API_CORS_ORIGINS":            "api.cors_origins",
	"LOG_LEVEL":                   "logging.level",
	"LOG_FORMAT":                  "logging.format",
	"LOG_CALLER":                  "logging.caller",
}

// envTransform maps an environment variable name to its config path.
// Unknown variables are dropped rather than guessed at.
func envTransform(key string) string {
	suffix := strings.TrimPrefix(key, envPrefix)
	if path, ok := envKeyPaths[suffix]; ok {
		return path
	}
	return ""
}

// sliceConfigPaths are paths parsed as comma-separated slices when they
// arrive as strings from environment variables.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}
