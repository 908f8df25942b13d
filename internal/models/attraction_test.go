// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestFeaturesUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantOutdoor bool
		wantDiff    string
		wantExtra   map[string]any
	}{
		{
			name:        "fixed schema only",
			input:       `{"difficulty":"easy","duration":"half_day","price_level":3,"is_outdoor":false}`,
			wantOutdoor: false,
			wantDiff:    "easy",
		},
		{
			name:        "is_outdoor defaults to true",
			input:       `{"difficulty":"hard"}`,
			wantOutdoor: true,
			wantDiff:    "hard",
		},
		{
			name:        "unknown keys land in extra",
			input:       `{"difficulty":"easy","wine_tasting":"yes","tags":["scenic"]}`,
			wantOutdoor: true,
			wantDiff:    "easy",
			wantExtra:   map[string]any{"wine_tasting": "yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Features
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if f.IsOutdoor != tt.wantOutdoor {
				t.Errorf("IsOutdoor = %v, want %v", f.IsOutdoor, tt.wantOutdoor)
			}
			if f.Difficulty != tt.wantDiff {
				t.Errorf("Difficulty = %q, want %q", f.Difficulty, tt.wantDiff)
			}
			for key, want := range tt.wantExtra {
				if got := f.Extra[key]; got != want {
					t.Errorf("Extra[%q] = %v, want %v", key, got, want)
				}
			}
		})
	}
}

func TestFeaturesMarshalRoundTrip(t *testing.T) {
	input := `{"difficulty":"medium","price_level":2,"is_outdoor":false,"family_friendly":"yes"}`

	var f Features
	if err := json.Unmarshal([]byte(input), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal(round trip) error = %v", err)
	}
	if back["difficulty"] != "medium" {
		t.Errorf("difficulty = %v, want medium", back["difficulty"])
	}
	if back["family_friendly"] != "yes" {
		t.Errorf("family_friendly = %v, want yes", back["family_friendly"])
	}
	if back["is_outdoor"] != false {
		t.Errorf("is_outdoor = %v, want false", back["is_outdoor"])
	}
}

func TestPrimaryCategory(t *testing.T) {
	a := Attraction{Categories: []string{"cultural", "family"}}
	if got := a.PrimaryCategory(); got != "cultural" {
		t.Errorf("PrimaryCategory() = %q, want cultural", got)
	}

	empty := Attraction{}
	if got := empty.PrimaryCategory(); got != "" {
		t.Errorf("PrimaryCategory() = %q, want empty", got)
	}
}
