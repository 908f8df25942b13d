// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package models

import "testing"

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name         string
		req          RecommendationRequest
		wantTopK     int
		wantDistance float64
		wantDuration int
	}{
		{
			name:         "all zero",
			req:          RecommendationRequest{},
			wantTopK:     DefaultTopK,
			wantDistance: DefaultMaxTravelDistance,
			wantDuration: DefaultTripDuration,
		},
		{
			name: "explicit values kept",
			req: RecommendationRequest{
				TopK: 5,
				Preferences: UserPreferences{
					MaxTravelDistance: 50,
					Duration:          3,
				},
			},
			wantTopK:     5,
			wantDistance: 50,
			wantDuration: 3,
		},
		{
			name:         "negative top_k replaced",
			req:          RecommendationRequest{TopK: -1},
			wantTopK:     DefaultTopK,
			wantDistance: DefaultMaxTravelDistance,
			wantDuration: DefaultTripDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.ApplyDefaults()
			if tt.req.TopK != tt.wantTopK {
				t.Errorf("TopK = %d, want %d", tt.req.TopK, tt.wantTopK)
			}
			if tt.req.Preferences.MaxTravelDistance != tt.wantDistance {
				t.Errorf("MaxTravelDistance = %.0f, want %.0f",
					tt.req.Preferences.MaxTravelDistance, tt.wantDistance)
			}
			if tt.req.Preferences.Duration != tt.wantDuration {
				t.Errorf("Duration = %d, want %d", tt.req.Preferences.Duration, tt.wantDuration)
			}
		})
	}
}
