// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"98 is outstanding", 98, TierOutstanding},
		{"90 boundary is outstanding", 90, TierOutstanding},
		{"89 is excellent", 89, TierExcellent},
		{"80 boundary is excellent", 80, TierExcellent},
		{"79 is good", 79, TierGood},
		{"70 boundary is good", 70, TierGood},
		{"69 is average", 69, TierAverage},
		{"60 boundary is average", 60, TierAverage},
		{"59 is poor", 59, TierPoor},
		{"zero is poor", 0, TierPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierForScore(tt.score); got != tt.want {
				t.Errorf("TierForScore(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestDatasetDecode(t *testing.T) {
	raw := `{
		"metadata": {
			"last_updated": "2026-02-17",
			"sources": ["Manual curation"],
			"year_range": [1970, 2023]
		},
		"regions": {
			"bordeaux_red": {
				"display_name": "Bordeaux (Red)",
				"country": "France",
				"wine_style": "red",
				"primary_grapes": ["Cabernet Sauvignon", "Merlot"],
				"vintages": {
					"1982": {
						"score": 98,
						"quality_tier": "outstanding",
						"description": "Legendary hot vintage.",
						"drinking_window": "at_peak",
						"notable_wines": ["Chateau Petrus"]
					}
				}
			}
		}
	}`

	var ds Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatalf("unmarshal dataset: %v", err)
	}

	if ds.Metadata.YearRange[0] != 1970 || ds.Metadata.YearRange[1] != 2023 {
		t.Errorf("year_range = %v, want [1970 2023]", ds.Metadata.YearRange)
	}

	region, ok := ds.Regions["bordeaux_red"]
	if !ok {
		t.Fatal("bordeaux_red region missing")
	}
	if region.WineStyle != StyleRed {
		t.Errorf("wine_style = %q, want %q", region.WineStyle, StyleRed)
	}

	rec, ok := region.Vintages["1982"]
	if !ok {
		t.Fatal("1982 vintage missing")
	}
	if rec.Score != 98 {
		t.Errorf("score = %v, want 98", rec.Score)
	}
	if rec.QualityTier != TierForScore(rec.Score) {
		t.Errorf("quality_tier %q inconsistent with score %v", rec.QualityTier, rec.Score)
	}
}

func TestFeatureRegionKey(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		f := Feature{Properties: map[string]interface{}{"region_key": "mosel"}}
		if got := f.RegionKey(); got != "mosel" {
			t.Errorf("RegionKey() = %q, want mosel", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		f := Feature{Properties: map[string]interface{}{}}
		if got := f.RegionKey(); got != "" {
			t.Errorf("RegionKey() = %q, want empty", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		f := Feature{Properties: map[string]interface{}{"region_key": 7}}
		if got := f.RegionKey(); got != "" {
			t.Errorf("RegionKey() = %q, want empty", got)
		}
	})
}
