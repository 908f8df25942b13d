// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package main is the entry point for the Wayfinder server.
//
// Wayfinder is a travel-recommendation and itinerary-planning service.
// Given a catalog of attractions and a traveler's preference profile, it
// ranks candidates with a hybrid content/location/popularity pipeline and
// assembles day-by-day visit plans with estimated travel between stops.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from environment variables and config
//     files (koanf v2)
//  2. Catalog: load the attraction catalog (file or built-in sample) and
//     fit the content matcher
//  3. Providers: routing (distance matrix) and weather clients, both
//     optional and fail-open
//  4. HTTP server: REST API plus Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (WAYFINDER_*)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Without a catalog path (WAYFINDER_CATALOG_PATH) the server starts with a
// small built-in sample catalog. Without provider API keys
// (WAYFINDER_ROUTING_API_KEY, WAYFINDER_WEATHER_API_KEY) travel estimation
// uses the geometric fallback and recommendations skip weather context.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests to complete
// before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rmcphail/wayfinder/internal/api"
	"github.com/rmcphail/wayfinder/internal/catalog"
	"github.com/rmcphail/wayfinder/internal/config"
	"github.com/rmcphail/wayfinder/internal/itinerary"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/recommend"
	"github.com/rmcphail/wayfinder/internal/travel"
	"github.com/rmcphail/wayfinder/internal/weather"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Wayfinder")

	engine, err := recommend.NewEngine(&recommend.Config{
		Weights:     cfg.Recommend.Weights(),
		DefaultTopK: models.DefaultTopK,
		MaxTopK:     cfg.Recommend.MaxTopK,
	}, logging.Component("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := catalog.NewLoader()
	attractions, source, err := loadCatalog(loader, cfg.Catalog.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	if err := engine.LoadCatalog(ctx, attractions); err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog snapshot")
	}
	logging.Info().
		Str("source", source).
		Int("attractions", engine.CatalogSize()).
		Msg("Catalog loaded")

	matrixClient := travel.NewMatrixClient(travel.MatrixClientConfig{
		BaseURL: cfg.Routing.BaseURL,
		APIKey:  cfg.Routing.APIKey,
		Timeout: cfg.Routing.Timeout,
		Mode:    cfg.Routing.Mode,
	})
	estimator := travel.NewEstimator(matrixClient)
	if matrixClient.Configured() {
		logging.Info().Str("base_url", cfg.Routing.BaseURL).Msg("Routing provider enabled")
	} else {
		logging.Info().Msg("Routing provider not configured - using geometric travel estimates")
	}

	weatherClient := weather.NewClient(weather.ClientConfig{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  cfg.Weather.APIKey,
		Timeout: cfg.Weather.Timeout,
	})
	if weatherClient.Configured() {
		logging.Info().Str("base_url", cfg.Weather.BaseURL).Msg("Weather provider enabled")
	} else {
		logging.Info().Msg("Weather provider not configured - recommendations skip weather context")
	}

	builder := itinerary.NewBuilder(estimator)
	handler := api.NewHandler(engine, builder, weatherClient, loader, cfg.Catalog.Path, version)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSAllowedOrigins: cfg.API.CORSOrigins,
		RateLimit:          cfg.API.RateLimit,
		RateLimitWindow:    cfg.API.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Wayfinder stopped")
}

// loadCatalog loads the configured catalog file, or the built-in sample
// catalog when no path is configured.
func loadCatalog(loader *catalog.Loader, path string) ([]models.Attraction, string, error) {
	if path == "" {
		return catalog.Sample(), "sample", nil
	}
	attractions, err := loader.LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return attractions, path, nil
}
