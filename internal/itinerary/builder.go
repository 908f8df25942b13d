// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

// Package itinerary partitions ranked recommendations into day plans.
//
// Visits keep their ranked order; there is no route optimization. Each day
// receives an equal slice of the recommendation list, and travel between
// consecutive stops is estimated with one batched lookup per day.
package itinerary

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rmcphail/wayfinder/internal/geo"
	"github.com/rmcphail/wayfinder/internal/logging"
	"github.com/rmcphail/wayfinder/internal/models"
	"github.com/rmcphail/wayfinder/internal/travel"
)

const (
	// maxAttractionsPerDay caps the visits scheduled into a single day.
	maxAttractionsPerDay = 4

	// dayStartHour is the local hour the first visit of each day begins.
	dayStartHour = 9

	// visitDuration is the dwell time allotted to each attraction.
	visitDuration = 2 * time.Hour
)

const timeLayout = "15:04"

// Request carries everything needed to assemble a plan.
type Request struct {
	Recommendations []models.Recommendation
	DurationDays    int
	StartDate       time.Time
	StartLocation   *geo.Point
	Weather         *models.Weather
}

// Builder assembles day plans from ranked recommendations.
type Builder struct {
	estimator *travel.Estimator
	logger    zerolog.Logger
	now       func() time.Time
}

// NewBuilder creates a builder backed by the given travel estimator.
func NewBuilder(estimator *travel.Estimator) *Builder {
	return &Builder{
		estimator: estimator,
		logger:    logging.Component("itinerary"),
		now:       time.Now,
	}
}

// Build assembles a plan. Zero recommendations yields an empty plan with an
// explanatory message rather than an error. DurationDays below 1 is treated
// as 1; a zero StartDate defaults to tomorrow.
func (b *Builder) Build(ctx context.Context, req Request) Plan {
	plan := Plan{
		ID:          uuid.NewString(),
		Days:        []DayPlan{},
		Weather:     req.Weather,
		GeneratedAt: b.now().UTC(),
	}

	if len(req.Recommendations) == 0 {
		plan.Message = "No attractions available to build an itinerary."
		return plan
	}

	days := req.DurationDays
	if days < 1 {
		days = 1
	}
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = b.now().AddDate(0, 0, 1)
	}

	perDay := len(req.Recommendations) / days
	if perDay < 1 {
		perDay = 1
	}
	if perDay > maxAttractionsPerDay {
		perDay = maxAttractionsPerDay
	}

	var confidenceSum float64
	for day := 0; day < days; day++ {
		lo := day * perDay
		if lo >= len(req.Recommendations) {
			break
		}
		hi := lo + perDay
		if hi > len(req.Recommendations) {
			hi = len(req.Recommendations)
		}
		visits := req.Recommendations[lo:hi]

		dayPlan := b.buildDay(ctx, day+1, startDate, req.StartLocation, visits)
		plan.Days = append(plan.Days, dayPlan)

		plan.Summary.TotalAttractions += len(visits)
		plan.Summary.TotalDistanceKm += dayPlan.TotalDistanceKm
		plan.Summary.TotalTravelMinutes += dayPlan.TotalDurationMinutes
		for _, v := range visits {
			confidenceSum += v.ConfidenceScore
		}
	}

	plan.Summary.TotalDays = len(plan.Days)
	plan.Summary.TotalDistanceKm = round2(plan.Summary.TotalDistanceKm)
	plan.Summary.TotalTravelMinutes = round1(plan.Summary.TotalTravelMinutes)
	if plan.Summary.TotalDays > 0 {
		plan.Summary.AttractionsPerDay = round2(
			float64(plan.Summary.TotalAttractions) / float64(plan.Summary.TotalDays))
	}
	if plan.Summary.TotalAttractions > 0 {
		plan.Summary.AverageConfidence = round2(
			confidenceSum / float64(plan.Summary.TotalAttractions))
	}

	b.logger.Debug().
		Str("itinerary_id", plan.ID).
		Int("days", plan.Summary.TotalDays).
		Int("attractions", plan.Summary.TotalAttractions).
		Msg("itinerary built")

	return plan
}

// buildDay sequences one day's visits and estimates the travel legs with a
// single batched lookup.
func (b *Builder) buildDay(ctx context.Context, dayIndex int, startDate time.Time, origin *geo.Point, visits []models.Recommendation) DayPlan {
	date := startDate.AddDate(0, 0, dayIndex-1)
	day := DayPlan{
		DayIndex: dayIndex,
		Date:     date.Format("2006-01-02"),
		Segments: make([]Segment, 0, len(visits)),
	}

	stops := make([]*geo.Point, len(visits))
	for i, v := range visits {
		stops[i] = v.Location
	}
	legs := b.estimator.EstimateRoute(ctx, origin, stops)

	clock := time.Date(date.Year(), date.Month(), date.Day(), dayStartHour, 0, 0, 0, date.Location())
	for i, v := range visits {
		leg := legs[i]
		if leg.DurationMinutes != nil {
			clock = clock.Add(time.Duration(*leg.DurationMinutes * float64(time.Minute)))
			day.TotalDurationMinutes += *leg.DurationMinutes
		}
		if leg.DistanceKm != nil {
			day.TotalDistanceKm += *leg.DistanceKm
		}

		arrival := clock
		departure := arrival.Add(visitDuration)
		day.Segments = append(day.Segments, Segment{
			Attraction:    v,
			Travel:        leg,
			ArrivalTime:   arrival.Format(timeLayout),
			DepartureTime: departure.Format(timeLayout),
		})
		clock = departure
	}

	day.TotalDistanceKm = round2(day.TotalDistanceKm)
	day.TotalDurationMinutes = round1(day.TotalDurationMinutes)
	return day
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
