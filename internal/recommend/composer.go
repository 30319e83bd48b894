// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/metrics"
	"github.com/mvachon/millesime/internal/models"
)

// alternativeTemplate renders non-primary picks. It is occasion
// agnostic on purpose: alternatives emphasize the wine itself, not
// the gifting context.
const alternativeTemplate = "{detail} {year} was {quality_phrase} for {region}."

var qualityPhrases = map[string]string{
	models.TierOutstanding: "exceptional",
	models.TierExcellent:   "excellent",
	models.TierGood:        "a good year",
	models.TierAverage:     "a modest but respectable year",
	models.TierPoor:        "a challenging year — though skilled producers still shone",
	models.TierNoData:      "a year with limited records",
}

const fallbackQualityPhrase = "a notable year"

var wineStyleLabels = map[string]string{
	models.StyleRed:       "red wine",
	models.StyleWhite:     "white wine",
	models.StyleSparkling: "sparkling wine",
	models.StyleFortified: "fortified wine",
	models.StyleRose:      "rosé",
}

const fallbackStyleLabel = "wine"

// CandidateSource yields the vintage candidates for a year and the
// dataset's year bounds. *vintage.Store satisfies it.
type CandidateSource interface {
	VintagesForYear(year int) ([]models.RegionVintage, error)
	YearRange() (minYear, maxYear int, err error)
}

// Composer turns (year, significance) into a rendered
// RecommendationResult. It holds no mutable state; the same inputs
// against the same dataset always produce the same output.
type Composer struct {
	source      CandidateSource
	preferences PreferenceTable
	notes       Notes
}

// NewComposer wires a composer. The notes table is a parameter rather
// than package state so tests can exercise the two-tier detail lookup
// in isolation.
func NewComposer(source CandidateSource, preferences PreferenceTable, notes Notes) (*Composer, error) {
	for occasion, pref := range preferences {
		if err := pref.Validate(); err != nil {
			return nil, fmt.Errorf("occasion %q: %w", occasion, err)
		}
	}
	if _, ok := preferences[OccasionOther]; !ok {
		return nil, fmt.Errorf("preference table has no %q fallback", OccasionOther)
	}
	return &Composer{source: source, preferences: preferences, notes: notes}, nil
}

// Recommend composes the recommendation for a gift year and occasion.
// Unrecognized significance values resolve to "other"; the result
// carries the normalized value. A year with no vintage data is not an
// error: the result has a nil Primary and an explanatory Message.
func (c *Composer) Recommend(ctx context.Context, year int, significance string) (*models.RecommendationResult, error) {
	pref, occasion := c.preferences.Resolve(significance)

	candidates, err := c.source.VintagesForYear(year)
	if err != nil {
		return nil, err
	}

	metrics.RecordRecommendation(occasion)

	if len(candidates) == 0 {
		minYear, maxYear, err := c.source.YearRange()
		if err != nil {
			return nil, err
		}
		logging.Ctx(ctx).Debug().
			Int("year", year).
			Str("occasion", occasion).
			Msg("no vintage candidates for year")
		return &models.RecommendationResult{
			Year:         year,
			Significance: occasion,
			Primary:      nil,
			Alternatives: []models.RecommendedWine{},
			Message: fmt.Sprintf("We don't have vintage data for %d. Try a year between %d and %d.",
				year, minYear, maxYear),
		}, nil
	}

	type ranked struct {
		candidate models.RegionVintage
		score     float64
	}
	scored := make([]ranked, len(candidates))
	for i, candidate := range candidates {
		scored[i] = ranked{candidate: candidate, score: Score(candidate, pref)}
	}
	// Stable keeps the store's deterministic region order for ties.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	primary := c.render(scored[0].candidate, pref, year, true)

	maxAlts := 3
	if len(scored)-1 < maxAlts {
		maxAlts = len(scored) - 1
	}
	alternatives := make([]models.RecommendedWine, 0, maxAlts)
	for _, r := range scored[1 : 1+maxAlts] {
		alternatives = append(alternatives, c.render(r.candidate, pref, year, false))
	}

	logging.Ctx(ctx).Debug().
		Int("year", year).
		Str("occasion", occasion).
		Str("primary", primary.RegionKey).
		Int("alternatives", len(alternatives)).
		Msg("recommendation composed")

	return &models.RecommendationResult{
		Year:         year,
		Significance: occasion,
		Primary:      &primary,
		Alternatives: alternatives,
	}, nil
}

func (c *Composer) render(candidate models.RegionVintage, pref OccasionPreference, year int, primary bool) models.RecommendedWine {
	phrase, ok := qualityPhrases[candidate.QualityTier]
	if !ok {
		phrase = fallbackQualityPhrase
	}
	label, ok := wineStyleLabels[candidate.WineStyle]
	if !ok {
		label = fallbackStyleLabel
	}
	detail := BuildDetail(c.notes, candidate, year)

	template := alternativeTemplate
	if primary {
		template = pref.PrimaryTemplate
	}
	text := strings.NewReplacer(
		"{wine_style_label}", label,
		"{region}", candidate.DisplayName,
		"{year}", strconv.Itoa(year),
		"{quality_phrase}", phrase,
		"{detail}", detail,
	).Replace(template)

	suggestion := ""
	if len(candidate.NotableWines) > 0 {
		names := candidate.NotableWines
		if len(names) > 3 {
			names = names[:3]
		}
		suggestion = "Look for: " + strings.Join(names, ", ") + "."
	}

	return models.RecommendedWine{
		RegionKey:          candidate.RegionKey,
		RegionName:         candidate.DisplayName,
		Country:            candidate.Country,
		WineStyle:          candidate.WineStyle,
		Score:              candidate.Score,
		QualityTier:        candidate.QualityTier,
		Grapes:             candidate.PrimaryGrapes,
		NotableWines:       candidate.NotableWines,
		DrinkingWindow:     candidate.DrinkingWindow,
		RecommendationText: text,
		Suggestion:         suggestion,
	}
}
