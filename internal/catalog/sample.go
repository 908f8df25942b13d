// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package catalog

import (
	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/models"
)

// Sample returns the built-in New Zealand attraction set, used when no
// catalog file is configured and in tests. Returns a fresh copy on each
// call so callers can't mutate shared state.
func Sample() []models.Attraction {
	sample := []models.Attraction{
		{
			ID:          "AKL_SKY_TOWER",
			Name:        "Sky Tower",
			Description: "Panoramic city views from New Zealand's tallest tower.",
			Categories:  []string{"urban", "scenic", "adventure"},
			Region:      "Auckland",
			Location:    &geo.Point{Lat: -36.8485, Lng: 174.7633},
			Features: models.Features{
				Difficulty: "easy", Duration: "short", PriceLevel: 2, IsOutdoor: false,
			},
			Rating:            models.Rating{Average: 4.7, Count: 5200},
			BestSeasons:       []string{"all"},
			EstimatedDuration: "2-3 hours",
			ReviewCount:       5200,
			PriceRange:        []float64{35, 85},
		},
		{
			ID:          "AKL_WAIHEKE_WINE",
			Name:        "Waiheke Island Wine Tour",
			Description: "Ferry across the gulf for vineyards and beaches.",
			Categories:  []string{"culinary", "scenic", "relaxation"},
			Region:      "Auckland",
			Location:    &geo.Point{Lat: -36.8020, Lng: 175.0803},
			Features: models.Features{
				Difficulty: "easy", Duration: "full_day", PriceLevel: 4, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.8, Count: 1900},
			BestSeasons:       []string{"spring", "summer", "autumn"},
			EstimatedDuration: "6-8 hours",
			ReviewCount:       1900,
			PriceRange:        []float64{120, 260},
		},
		{
			ID:          "AKL_PIHA_BEACH",
			Name:        "Piha Beach",
			Description: "Black-sand surf beach framed by Lion Rock.",
			Categories:  []string{"natural", "beach", "surfing"},
			Region:      "Auckland",
			Location:    &geo.Point{Lat: -36.9529, Lng: 174.4687},
			Features: models.Features{
				Difficulty: "medium", Duration: "half_day", PriceLevel: 0, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.6, Count: 2400},
			BestSeasons:       []string{"summer", "autumn"},
			EstimatedDuration: "3-4 hours",
			ReviewCount:       2400,
			PriceRange:        []float64{0, 30},
		},
		{
			ID:          "WLG_TE_PAPA",
			Name:        "Te Papa Museum",
			Description: "Interactive national museum exploring culture and history.",
			Categories:  []string{"cultural", "museum", "family"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.2905, Lng: 174.7821},
			Features: models.Features{
				Difficulty: "easy", Duration: "half_day", PriceLevel: 1, IsOutdoor: false,
			},
			Rating:            models.Rating{Average: 4.6, Count: 3200},
			BestSeasons:       []string{"all"},
			EstimatedDuration: "3-4 hours",
			ReviewCount:       3200,
			PriceRange:        []float64{0, 40},
		},
		{
			ID:          "WLG_ZEALANDIA",
			Name:        "Zealandia Ecosanctuary",
			Description: "Fenced valley sanctuary for native birdlife minutes from the CBD.",
			Categories:  []string{"natural", "wildlife", "family"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.2919, Lng: 174.7567},
			Features: models.Features{
				Difficulty: "easy", Duration: "half_day", PriceLevel: 2, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.7, Count: 2100},
			BestSeasons:       []string{"spring", "summer", "autumn"},
			EstimatedDuration: "3-4 hours",
			ReviewCount:       2100,
			PriceRange:        []float64{55, 110},
		},
		{
			ID:          "WLG_MOUNT_VICTORIA",
			Name:        "Mount Victoria Lookout",
			Description: "Short climb for sweeping views of Wellington harbour and hills.",
			Categories:  []string{"scenic", "hiking", "photography"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.3003, Lng: 174.7947},
			Features: models.Features{
				Difficulty: "easy", Duration: "short", PriceLevel: 0, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.6, Count: 2800},
			BestSeasons:       []string{"all"},
			EstimatedDuration: "1-2 hours",
			ReviewCount:       2800,
			PriceRange:        []float64{0, 20},
		},
		{
			ID:          "WLG_WETA_WORKSHOP",
			Name:        "Weta Workshop Experience",
			Description: "Behind-the-scenes movie magic tour in Miramar.",
			Categories:  []string{"cultural", "studio", "family"},
			Region:      "Wellington",
			Location:    &geo.Point{Lat: -41.3244, Lng: 174.8266},
			Features: models.Features{
				Difficulty: "easy", Duration: "short", PriceLevel: 2, IsOutdoor: false,
			},
			Rating:            models.Rating{Average: 4.5, Count: 2600},
			BestSeasons:       []string{"all"},
			EstimatedDuration: "2-3 hours",
			ReviewCount:       2600,
			PriceRange:        []float64{55, 110},
		},
		{
			ID:          "ROT_TE_PUIA",
			Name:        "Te Puia Geothermal Valley",
			Description: "Geysers, mud pools, and living Maori culture in Whakarewarewa.",
			Categories:  []string{"natural", "cultural", "geothermal"},
			Region:      "Rotorua",
			Location:    &geo.Point{Lat: -38.1624, Lng: 176.2560},
			Features: models.Features{
				Difficulty: "easy", Duration: "half_day", PriceLevel: 3, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.7, Count: 3400},
			BestSeasons:       []string{"all"},
			EstimatedDuration: "3-4 hours",
			ReviewCount:       3400,
			PriceRange:        []float64{60, 130},
		},
		{
			ID:          "ROT_REDWOODS",
			Name:        "Redwoods Treewalk",
			Description: "Suspended walkways through a towering redwood forest.",
			Categories:  []string{"natural", "hiking", "family"},
			Region:      "Rotorua",
			Location:    &geo.Point{Lat: -38.1580, Lng: 176.2730},
			Features: models.Features{
				Difficulty: "easy", Duration: "short", PriceLevel: 2, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.8, Count: 2900},
			BestSeasons:       []string{"spring", "summer", "autumn"},
			EstimatedDuration: "1-2 hours",
			ReviewCount:       2900,
			PriceRange:        []float64{35, 80},
		},
		{
			ID:          "CHC_BOTANIC",
			Name:        "Christchurch Botanic Gardens",
			Description: "Riverside gardens with conservatories and punting on the Avon.",
			Categories:  []string{"natural", "relaxation", "family"},
			Region:      "Christchurch",
			Location:    &geo.Point{Lat: -43.5310, Lng: 172.6203},
			Features: models.Features{
				Difficulty: "easy", Duration: "half_day", PriceLevel: 0, IsOutdoor: true,
			},
			Rating:            models.Rating{Average: 4.7, Count: 4100},
			BestSeasons:       []string{"spring", "summer"},
			EstimatedDuration: "2-3 hours",
			ReviewCount:       4100,
			PriceRange:        []float64{0, 35},
		},
	}

	out := make([]models.Attraction, len(sample))
	copy(out, sample)
	return out
}
