// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package models

// Wine styles form a closed set. A region has exactly one style.
const (
	StyleRed       = "red"
	StyleWhite     = "white"
	StyleSparkling = "sparkling"
	StyleFortified = "fortified"
	StyleRose      = "rosé"
)

// Quality tiers are derived from the numeric score via TierForScore.
// TierNoData is synthesized at query time for years absent from a
// region's vintage map; it is never stored in the dataset.
const (
	TierOutstanding = "outstanding"
	TierExcellent   = "excellent"
	TierGood        = "good"
	TierAverage     = "average"
	TierPoor        = "poor"
	TierNoData      = "no_data"
)

// Drinking windows describe where a vintage sits in its life today.
const (
	WindowYoung    = "young"
	WindowReady    = "ready"
	WindowAtPeak   = "at_peak"
	WindowMature   = "mature"
	WindowPastPeak = "past_peak"
	WindowCellar   = "cellaring"
	WindowUnknown  = "unknown"
)

// TierForScore maps a numeric score to its quality tier using the
// fixed thresholds the dataset is built with: >=90 outstanding,
// >=80 excellent, >=70 good, >=60 average, else poor.
func TierForScore(score float64) string {
	switch {
	case score >= 90:
		return TierOutstanding
	case score >= 80:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 60:
		return TierAverage
	default:
		return TierPoor
	}
}

// Dataset is the top-level shape of vintage_data.json.
type Dataset struct {
	Metadata DatasetMetadata   `json:"metadata"`
	Regions  map[string]Region `json:"regions"`
}

// DatasetMetadata carries provenance and the inclusive year bounds the
// dataset covers. YearRange is [min, max].
type DatasetMetadata struct {
	LastUpdated string   `json:"last_updated"`
	Sources     []string `json:"sources"`
	YearRange   [2]int   `json:"year_range"`
}

// Region identifies one wine-producing area. The map key in
// Dataset.Regions is the stable region key (e.g. "bordeaux_red");
// keys of Vintages are decimal year strings, matching the JSON file.
type Region struct {
	DisplayName   string                   `json:"display_name"`
	Country       string                   `json:"country"`
	WineStyle     string                   `json:"wine_style"`
	PrimaryGrapes []string                 `json:"primary_grapes"`
	Vintages      map[string]VintageRecord `json:"vintages"`
}

// VintageRecord is the quality assessment of one region in one year.
type VintageRecord struct {
	Score          float64  `json:"score"`
	QualityTier    string   `json:"quality_tier"`
	Description    string   `json:"description"`
	DrinkingWindow string   `json:"drinking_window"`
	NotableWines   []string `json:"notable_wines"`
}

// RegionVintage is a region's vintage record for one year, flattened
// with the region attributes. It is the row shape of the /vintage/{year}
// endpoint and the candidate unit the recommendation engine scores.
type RegionVintage struct {
	RegionKey      string   `json:"region_key"`
	DisplayName    string   `json:"display_name"`
	Country        string   `json:"country"`
	WineStyle      string   `json:"wine_style"`
	PrimaryGrapes  []string `json:"primary_grapes"`
	Score          float64  `json:"score"`
	QualityTier    string   `json:"quality_tier"`
	Description    string   `json:"description"`
	DrinkingWindow string   `json:"drinking_window"`
	NotableWines   []string `json:"notable_wines"`
}

// VintageYear is the /vintage/{year} response payload.
type VintageYear struct {
	Year    int             `json:"year"`
	Regions []RegionVintage `json:"regions"`
}

// YearRange is the /year-range response payload.
type YearRange struct {
	MinYear int `json:"min_year"`
	MaxYear int `json:"max_year"`
}
