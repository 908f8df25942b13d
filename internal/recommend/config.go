// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package recommend

import "fmt"

// Weights defines the relative contribution of each additive scoring
// component. Weights are normalized at runtime, so they don't need to sum
// to 1.0.
type Weights struct {
	// Content is the weight for content similarity.
	Content float64 `json:"content" koanf:"content"`

	// Location is the weight for location suitability.
	Location float64 `json:"location" koanf:"location"`

	// Popularity is the weight for normalized rating and review volume.
	Popularity float64 `json:"popularity" koanf:"popularity"`
}

// Normalize returns a copy with weights normalized to sum to 1.0.
// All-zero weights normalize to the defaults.
func (w Weights) Normalize() Weights {
	sum := w.Content + w.Location + w.Popularity
	if sum == 0 {
		return DefaultWeights()
	}

	return Weights{
		Content:    w.Content / sum,
		Location:   w.Location / sum,
		Popularity: w.Popularity / sum,
	}
}

// DefaultWeights returns the default component blend: content carries the
// most signal, location second, popularity is a tiebreaker.
func DefaultWeights() Weights {
	return Weights{
		Content:    0.5,
		Location:   0.3,
		Popularity: 0.2,
	}
}

// Config contains configuration for the recommendation engine.
type Config struct {
	// Weights is the additive component blend.
	Weights Weights `json:"weights" koanf:"weights"`

	// DefaultTopK is the result count when the request doesn't specify one.
	DefaultTopK int `json:"default_top_k" koanf:"default_top_k"`

	// MaxTopK bounds the per-request result count.
	MaxTopK int `json:"max_top_k" koanf:"max_top_k"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights:     DefaultWeights(),
		DefaultTopK: 10,
		MaxTopK:     100,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Weights.Content < 0 || c.Weights.Location < 0 || c.Weights.Popularity < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", c.Weights)
	}
	if c.DefaultTopK <= 0 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k (%d) must be >= default_top_k (%d)", c.MaxTopK, c.DefaultTopK)
	}
	return nil
}
