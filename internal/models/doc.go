// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package models defines the data shapes shared across Wayfinder: attraction
// catalog records, traveler preference profiles, and the recommendation
// request/response wire formats.
//
// Catalog records are immutable within a request; everything derived from
// them (scored candidates, day plans) is ephemeral and never persisted.
package models
