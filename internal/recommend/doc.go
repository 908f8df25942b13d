// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package recommend implements the hybrid attraction ranking engine.
//
// The pipeline is a single-pass pure function of the catalog snapshot,
// the traveler's preference profile, and the optional location/weather
// context:
//
//	catalog + profile -> {content, location, popularity} -> weighted blend
//	                  -> x context multiplier -> stable sort -> top-k
//
// # Components
//
//   - Content similarity: TF-IDF over catalog text/category features,
//     cosine similarity against the profile (scoring.ContentMatcher)
//   - Location: exp(-distance/100km) decay with a hard cutoff at the
//     profile's max travel distance (scoring.ScoreLocation)
//   - Popularity: normalized rating plus review volume
//     (scoring.PopularityScores)
//   - Context: seasonal and weather multiplier, capped at 1.5
//     (scoring.ContextMultiplier)
//
// # Determinism
//
// Ranking is deterministic: no randomized tie-breaks, and the final sort is
// stable so equal composites preserve catalog insertion order. Failures
// degrade to empty or partial results; only a missing catalog snapshot is
// an error (ErrNotInitialized).
package recommend
