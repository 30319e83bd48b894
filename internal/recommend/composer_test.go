// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package recommend

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/mvachon/millesime/internal/models"
)

// fakeSource feeds fixed candidate lists to the composer.
type fakeSource struct {
	byYear  map[int][]models.RegionVintage
	minYear int
	maxYear int
}

func (f *fakeSource) VintagesForYear(year int) ([]models.RegionVintage, error) {
	return f.byYear[year], nil
}

func (f *fakeSource) YearRange() (int, int, error) {
	return f.minYear, f.maxYear, nil
}

func newTestComposer(t *testing.T, source CandidateSource, notes Notes) *Composer {
	t.Helper()
	composer, err := NewComposer(source, DefaultPreferences(), notes)
	if err != nil {
		t.Fatalf("NewComposer() error = %v", err)
	}
	return composer
}

func TestRecommendSingleCandidate(t *testing.T) {
	source := &fakeSource{
		byYear: map[int][]models.RegionVintage{
			1982: {{
				RegionKey:      "bordeaux_red",
				DisplayName:    "Bordeaux (Red)",
				Country:        "France",
				WineStyle:      "red",
				PrimaryGrapes:  []string{"Cabernet Sauvignon", "Merlot"},
				Score:          98,
				QualityTier:    "outstanding",
				DrinkingWindow: "mature",
				NotableWines:   []string{"Château Margaux", "Château Latour"},
			}},
		},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, CuratedNotes())

	result, err := composer.Recommend(context.Background(), 1982, "birthday")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if result.Year != 1982 || result.Significance != "birthday" {
		t.Errorf("envelope = %d/%q, want 1982/birthday", result.Year, result.Significance)
	}
	if result.Primary == nil {
		t.Fatal("Primary = nil")
	}
	if result.Primary.RegionKey != "bordeaux_red" {
		t.Errorf("primary region = %q, want bordeaux_red", result.Primary.RegionKey)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("alternatives = %d, want 0", len(result.Alternatives))
	}
	if result.Message != "" {
		t.Errorf("message = %q, want empty", result.Message)
	}

	// Birthday template with the curated 1982 note.
	text := result.Primary.RecommendationText
	if !strings.HasPrefix(text, "For a birthday celebration, red wine from Bordeaux (Red) is a wonderful choice. 1982 was exceptional.") {
		t.Errorf("recommendation text = %q", text)
	}
	if !strings.Contains(text, "A transformative year that put Bordeaux on the modern map.") {
		t.Errorf("curated note missing from text %q", text)
	}
	if result.Primary.Suggestion != "Look for: Château Margaux, Château Latour." {
		t.Errorf("suggestion = %q", result.Primary.Suggestion)
	}
}

func TestRecommendRanking(t *testing.T) {
	// Four candidates for a birthday: sparkling champagne outranks a
	// higher-scored red from an unranked region.
	source := &fakeSource{
		byYear: map[int][]models.RegionVintage{
			2010: {
				{RegionKey: "rioja", DisplayName: "Rioja", WineStyle: "red", Score: 96, QualityTier: "outstanding"},
				{RegionKey: "champagne", DisplayName: "Champagne", WineStyle: "sparkling", Score: 85, QualityTier: "excellent"},
				{RegionKey: "mosel", DisplayName: "Mosel", WineStyle: "white", Score: 82, QualityTier: "excellent"},
				{RegionKey: "douro", DisplayName: "Douro", WineStyle: "fortified", Score: 90, QualityTier: "outstanding"},
			},
		},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, nil)

	result, err := composer.Recommend(context.Background(), 2010, "birthday")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// champagne: 85*0.5 + 30 + 20 = 92.5
	// rioja:     96*0.5 + 20      = 68
	// mosel:     82*0.5 + 10      = 51
	// douro:     90*0.5           = 45
	if result.Primary.RegionKey != "champagne" {
		t.Errorf("primary = %q, want champagne", result.Primary.RegionKey)
	}
	wantAlts := []string{"rioja", "mosel", "douro"}
	if len(result.Alternatives) != len(wantAlts) {
		t.Fatalf("alternatives = %d, want %d", len(result.Alternatives), len(wantAlts))
	}
	for i, want := range wantAlts {
		if result.Alternatives[i].RegionKey != want {
			t.Errorf("alternative[%d] = %q, want %q", i, result.Alternatives[i].RegionKey, want)
		}
	}

	// Alternatives use the occasion-agnostic template.
	altText := result.Alternatives[0].RecommendationText
	if !strings.HasSuffix(altText, "2010 was exceptional for Rioja.") {
		t.Errorf("alternative text = %q", altText)
	}
	if strings.Contains(altText, "birthday") {
		t.Errorf("alternative text %q carries occasion framing", altText)
	}
}

func TestRecommendCapsAlternativesAtThree(t *testing.T) {
	rows := make([]models.RegionVintage, 6)
	for i, key := range []string{"a", "b", "c", "d", "e", "f"} {
		rows[i] = models.RegionVintage{
			RegionKey:   key,
			DisplayName: strings.ToUpper(key),
			WineStyle:   "red",
			Score:       float64(90 - i),
			QualityTier: "outstanding",
		}
	}
	source := &fakeSource{
		byYear:  map[int][]models.RegionVintage{2000: rows},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, nil)

	result, err := composer.Recommend(context.Background(), 2000, "other")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(result.Alternatives) != 3 {
		t.Errorf("alternatives = %d, want 3", len(result.Alternatives))
	}
}

func TestRecommendStableOrderOnTies(t *testing.T) {
	// Identical style, tier and score: ranking must keep source order.
	tied := []models.RegionVintage{
		{RegionKey: "barossa", DisplayName: "Barossa", WineStyle: "red", Score: 88, QualityTier: "excellent"},
		{RegionKey: "mendoza", DisplayName: "Mendoza", WineStyle: "red", Score: 88, QualityTier: "excellent"},
		{RegionKey: "stellenbosch", DisplayName: "Stellenbosch", WineStyle: "red", Score: 88, QualityTier: "excellent"},
	}
	source := &fakeSource{
		byYear:  map[int][]models.RegionVintage{2015: tied},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, nil)

	result, err := composer.Recommend(context.Background(), 2015, "graduation")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Primary.RegionKey != "barossa" {
		t.Errorf("primary = %q, want barossa (first in source order)", result.Primary.RegionKey)
	}
	if result.Alternatives[0].RegionKey != "mendoza" || result.Alternatives[1].RegionKey != "stellenbosch" {
		t.Errorf("tie order broken: %q, %q",
			result.Alternatives[0].RegionKey, result.Alternatives[1].RegionKey)
	}
}

func TestRecommendNoDataYear(t *testing.T) {
	source := &fakeSource{
		byYear:  map[int][]models.RegionVintage{},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, nil)

	result, err := composer.Recommend(context.Background(), 1975, "anniversary")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if result.Primary != nil {
		t.Errorf("Primary = %+v, want nil", result.Primary)
	}
	if len(result.Alternatives) != 0 {
		t.Errorf("alternatives = %d, want 0", len(result.Alternatives))
	}
	want := "We don't have vintage data for 1975. Try a year between 1970 and 2023."
	if result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
}

func TestRecommendUnknownSignificanceMatchesOther(t *testing.T) {
	source := &fakeSource{
		byYear: map[int][]models.RegionVintage{
			2016: {
				{RegionKey: "bordeaux_red", DisplayName: "Bordeaux (Red)", WineStyle: "red", Score: 97, QualityTier: "outstanding", DrinkingWindow: "cellaring", NotableWines: []string{"Château Test"}},
				{RegionKey: "napa_valley", DisplayName: "Napa Valley", WineStyle: "red", Score: 95, QualityTier: "outstanding", DrinkingWindow: "young"},
			},
		},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, CuratedNotes())

	other, err := composer.Recommend(context.Background(), 2016, "other")
	if err != nil {
		t.Fatalf("Recommend(other) error = %v", err)
	}
	unknown, err := composer.Recommend(context.Background(), 2016, "housewarming")
	if err != nil {
		t.Fatalf("Recommend(housewarming) error = %v", err)
	}

	otherJSON, err := json.Marshal(other)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	unknownJSON, err := json.Marshal(unknown)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(otherJSON) != string(unknownJSON) {
		t.Errorf("unknown significance output differs from other:\n%s\n%s", unknownJSON, otherJSON)
	}
}

func TestRecommendSuggestionTruncatesToThree(t *testing.T) {
	source := &fakeSource{
		byYear: map[int][]models.RegionVintage{
			2005: {{
				RegionKey:    "piedmont",
				DisplayName:  "Piedmont",
				WineStyle:    "red",
				Score:        93,
				QualityTier:  "outstanding",
				NotableWines: []string{"Giacosa", "Conterno", "Mascarello", "Rinaldi"},
			}},
		},
		minYear: 1970, maxYear: 2023,
	}
	composer := newTestComposer(t, source, nil)

	result, err := composer.Recommend(context.Background(), 2005, "retirement")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := result.Primary.Suggestion; got != "Look for: Giacosa, Conterno, Mascarello." {
		t.Errorf("suggestion = %q", got)
	}
}

func TestNewComposerRejectsBadTable(t *testing.T) {
	source := &fakeSource{minYear: 1970, maxYear: 2023}

	t.Run("missing other fallback", func(t *testing.T) {
		table := PreferenceTable{
			"birthday": DefaultPreferences()["birthday"],
		}
		if _, err := NewComposer(source, table, nil); err == nil {
			t.Error("NewComposer() error = nil, want missing-fallback error")
		}
	})

	t.Run("invalid preference", func(t *testing.T) {
		table := DefaultPreferences()
		table["birthday"] = OccasionPreference{PrimaryTemplate: "x"}
		if _, err := NewComposer(source, table, nil); err == nil {
			t.Error("NewComposer() error = nil, want validation error")
		}
	})
}
