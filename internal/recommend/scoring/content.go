// Wayfinder - Travel Recommendations and Itinerary Planning
// Copyright 2026 R. McPhail (rmcphail)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rmcphail/wayfinder

package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/rmcphail/wayfinder/internal/models"
)

// ContentMatcher scores attractions by vector-space similarity between an
// attraction's textual/categorical features and a traveler's preference
// profile.
//
// Fit builds one feature-term bag per attraction (categories, feature flags
// like "difficulty_easy", description tokens, region tag) and fits a TF-IDF
// weighting over the whole catalog. The fitted state is retained for the
// catalog snapshot's lifetime. A query builds a user-term bag, transforms it
// through the same fitted space, and computes cosine similarity against every
// attraction vector. All term weights are non-negative, so similarities land
// in [0, 1].
type ContentMatcher struct {
	// Fitted model. Vectors are keyed by attraction id rather than slice
	// index so filtering elsewhere can never drift out of alignment.
	vocabulary map[string]int
	idf        []float64
	vectors    map[string]map[int]float64
	fitted     bool
}

// NewContentMatcher creates an unfitted content matcher.
func NewContentMatcher() *ContentMatcher {
	return &ContentMatcher{
		vocabulary: make(map[string]int),
		vectors:    make(map[string]map[int]float64),
	}
}

// Fitted reports whether Fit has been called with a non-empty catalog.
func (m *ContentMatcher) Fitted() bool {
	return m.fitted
}

// Fit builds the term vocabulary, IDF weights, and per-attraction vectors.
// Fitting is done once per catalog load; the matcher is not safe for
// concurrent mutation, so callers fit a fresh matcher per snapshot and swap
// it in atomically.
func (m *ContentMatcher) Fit(attractions []models.Attraction) {
	m.vocabulary = make(map[string]int)
	m.idf = nil
	m.vectors = make(map[string]map[int]float64, len(attractions))
	m.fitted = false

	if len(attractions) == 0 {
		return
	}

	// First pass: collect term bags and document frequencies.
	bags := make([]map[string]int, len(attractions))
	docFreq := make(map[string]int)
	for i := range attractions {
		bag := attractionTerms(&attractions[i])
		bags[i] = bag
		for term := range bag {
			docFreq[term]++
		}
	}

	for term := range docFreq {
		m.vocabulary[term] = len(m.vocabulary)
	}

	// Smoothed IDF so terms present in every document keep a small
	// positive weight instead of vanishing.
	n := float64(len(attractions))
	m.idf = make([]float64, len(m.vocabulary))
	for term, index := range m.vocabulary {
		df := float64(docFreq[term])
		m.idf[index] = math.Log((1+n)/(1+df)) + 1
	}

	// Second pass: L2-normalized TF-IDF vector per attraction.
	for i := range attractions {
		m.vectors[attractions[i].ID] = m.vectorize(bags[i])
	}

	m.fitted = true
}

// Score transforms the traveler's preference profile through the fitted
// space and returns cosine similarity per attraction id, in [0, 1].
//
// Returns nil when the matcher is unfitted or the profile produces an empty
// term bag; both are degraded modes, not errors, and contribute no content
// score.
func (m *ContentMatcher) Score(prefs *models.UserPreferences, season string) map[string]float64 {
	if !m.fitted {
		return nil
	}

	bag := profileTerms(prefs, season)
	if len(bag) == 0 {
		return nil
	}

	query := m.vectorize(bag)
	if len(query) == 0 {
		// Profile terms exist but none appear in the catalog vocabulary.
		return nil
	}

	scores := make(map[string]float64, len(m.vectors))
	for id, vector := range m.vectors {
		scores[id] = dot(query, vector)
	}

	return scores
}

// vectorize converts a term bag to a sparse L2-normalized TF-IDF vector.
// Terms outside the fitted vocabulary are ignored.
func (m *ContentMatcher) vectorize(bag map[string]int) map[int]float64 {
	vector := make(map[int]float64, len(bag))
	var norm float64
	for term, count := range bag {
		index, ok := m.vocabulary[term]
		if !ok {
			continue
		}
		weight := float64(count) * m.idf[index]
		vector[index] = weight
		norm += weight * weight
	}

	if norm == 0 {
		return nil
	}

	norm = math.Sqrt(norm)
	for index := range vector {
		vector[index] /= norm
	}

	return vector
}

// dot computes the dot product of two sparse vectors. Both operands are
// L2-normalized, so this is the cosine similarity.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for index, weight := range a {
		sum += weight * b[index]
	}
	return sum
}

// attractionTerms builds the feature-term bag for one attraction.
func attractionTerms(a *models.Attraction) map[string]int {
	bag := make(map[string]int)

	for _, category := range a.Categories {
		addTerm(bag, category)
	}

	if a.Features.Difficulty != "" {
		addTerm(bag, "difficulty_"+a.Features.Difficulty)
	}
	if a.Features.Duration != "" {
		addTerm(bag, "duration_"+a.Features.Duration)
	}
	for key, value := range a.Features.Extra {
		switch v := value.(type) {
		case string:
			addTerm(bag, fmt.Sprintf("%s_%s", key, v))
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					addTerm(bag, fmt.Sprintf("%s_%s", key, s))
				}
			}
		}
	}

	for _, token := range tokenize(a.Description) {
		bag[token]++
	}

	if a.Region != "" {
		addTerm(bag, "region_"+a.Region)
	}

	return bag
}

// profileTerms builds the user-term bag from a preference profile.
func profileTerms(prefs *models.UserPreferences, season string) map[string]int {
	bag := make(map[string]int)

	for _, activity := range prefs.ActivityTypes {
		addTerm(bag, activity)
	}
	if prefs.TravelStyle != "" {
		addTerm(bag, "style_"+prefs.TravelStyle)
	}
	if prefs.DifficultyPreference != "" {
		addTerm(bag, "difficulty_"+prefs.DifficultyPreference)
	}
	if season != "" {
		addTerm(bag, "season_"+season)
	}

	return bag
}

// addTerm inserts a normalized compound term into a bag.
func addTerm(bag map[string]int, term string) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return
	}
	bag[strings.ReplaceAll(term, " ", "_")]++
}

// tokenize lowercases free text and splits it into word tokens, dropping
// stopwords and single characters.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < 2 {
			continue
		}
		if _, stop := stopwords[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}

	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r > 127 // keep non-ASCII letters (macrons in Maori place names)
}

// stopwords is a compact English stopword list; enough to keep common filler
// out of description vectors without a full NLP dependency.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {}, "you": {},
	"your": {}, "this": {}, "these": {}, "their": {}, "through": {},
	"minutes": {}, "hours": {},
}
