// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package models

// RecommendedWine is a fully rendered recommendation entry: the
// candidate's vintage data plus the natural-language recommendation
// text and the optional "Look for: ..." suggestion line.
type RecommendedWine struct {
	RegionKey          string   `json:"region_key"`
	RegionName         string   `json:"region_name"`
	Country            string   `json:"country"`
	WineStyle          string   `json:"wine_style"`
	Score              float64  `json:"score"`
	QualityTier        string   `json:"quality_tier"`
	Grapes             []string `json:"grapes"`
	NotableWines       []string `json:"notable_wines"`
	DrinkingWindow     string   `json:"drinking_window"`
	RecommendationText string   `json:"recommendation_text"`
	Suggestion         string   `json:"suggestion"`
}

// RecommendationResult is the /recommend response payload. Primary is
// nil and Message is populated when no region has data for the
// requested year; that case is an empty result, not an error.
type RecommendationResult struct {
	Year         int               `json:"year"`
	Significance string            `json:"significance"`
	Primary      *RecommendedWine  `json:"primary"`
	Alternatives []RecommendedWine `json:"alternatives"`
	Message      string            `json:"message,omitempty"`
}
