// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package recommend

import (
	"github.com/mvachon/millesime/internal/models"
	"github.com/mvachon/millesime/internal/validation"
)

// OccasionOther is the fallback occasion. Unrecognized significance
// values are silently normalized to it; that leniency is part of the
// API contract, not an error path.
const OccasionOther = "other"

// Occasions lists the recognized significance values, in the order
// they are documented.
var Occasions = []string{
	"birthday", "anniversary", "wedding",
	"graduation", "retirement", "memorial", OccasionOther,
}

// OccasionPreference drives candidate ranking and primary-text
// rendering for one gift occasion. StylePreference and PreferRegions
// are ordered most-preferred first; PrimaryTemplate carries the
// placeholders {wine_style_label}, {region}, {year}, {quality_phrase}
// and {detail}.
type OccasionPreference struct {
	StylePreference []string `validate:"required,min=1,max=3"`
	PreferRegions   []string `validate:"required,min=1"`
	PrimaryTemplate string   `validate:"required"`
}

// Validate checks the structural assumptions the scoring formula
// relies on. The style bonus 30 - rank*10 goes negative from rank 3
// on, so style lists are capped at three entries.
func (p OccasionPreference) Validate() error {
	if verr := validation.ValidateStruct(p); verr != nil {
		return verr
	}
	return nil
}

// PreferenceTable maps each recognized occasion to its preference.
type PreferenceTable map[string]OccasionPreference

// Resolve returns the preference for significance, falling back to
// "other" for unrecognized values, and the normalized occasion name.
func (t PreferenceTable) Resolve(significance string) (OccasionPreference, string) {
	if pref, ok := t[significance]; ok {
		return pref, significance
	}
	return t[OccasionOther], OccasionOther
}

// DefaultPreferences returns the built-in occasion table. The style
// and region orderings, and the template wording, are load-bearing:
// they feed directly into scoring and into user-visible text.
func DefaultPreferences() PreferenceTable {
	return PreferenceTable{
		"birthday": {
			StylePreference: []string{models.StyleSparkling, models.StyleRed, models.StyleWhite},
			PreferRegions:   []string{"champagne", "bordeaux_red", "burgundy_red", "napa_valley"},
			PrimaryTemplate: "For a birthday celebration, {wine_style_label} from {region} is a wonderful choice. {year} was {quality_phrase}. {detail}",
		},
		"anniversary": {
			StylePreference: []string{models.StyleRed, models.StyleSparkling, models.StyleWhite},
			PreferRegions:   []string{"burgundy_red", "bordeaux_red", "champagne", "tuscany", "piedmont"},
			PrimaryTemplate: "To mark this anniversary, {wine_style_label} from {region} captures depth and elegance. {year} was {quality_phrase} here. {detail}",
		},
		"wedding": {
			StylePreference: []string{models.StyleSparkling, models.StyleWhite, models.StyleRed},
			PreferRegions:   []string{"champagne", "burgundy_white", "napa_valley", "marlborough"},
			PrimaryTemplate: "A wedding calls for something joyous — {wine_style_label} from {region} is a natural choice. {year} was {quality_phrase}. {detail}",
		},
		"graduation": {
			StylePreference: []string{models.StyleSparkling, models.StyleWhite, models.StyleRed},
			PreferRegions:   []string{"champagne", "marlborough", "willamette", "mosel"},
			PrimaryTemplate: "Celebrate this achievement with {wine_style_label} from {region}. {year} was {quality_phrase}, much like the promise ahead. {detail}",
		},
		"retirement": {
			StylePreference: []string{models.StyleRed, models.StyleFortified, models.StyleWhite},
			PreferRegions:   []string{"bordeaux_red", "burgundy_red", "douro", "piedmont", "rhone_north"},
			PrimaryTemplate: "A well-aged {wine_style_label} from {region} — the {year} is {quality_phrase}, refined and worth every year of cellaring. {detail}",
		},
		"memorial": {
			StylePreference: []string{models.StyleRed, models.StyleWhite, models.StyleFortified},
			PreferRegions:   []string{"burgundy_red", "bordeaux_red", "rhone_north", "douro"},
			PrimaryTemplate: "In remembrance, {wine_style_label} from {region}. {year} produced {quality_phrase} wines — a fitting tribute. {detail}",
		},
		OccasionOther: {
			StylePreference: []string{models.StyleRed, models.StyleWhite, models.StyleSparkling},
			PreferRegions:   []string{"bordeaux_red", "burgundy_red", "champagne", "napa_valley"},
			PrimaryTemplate: "For this special occasion, {wine_style_label} from {region} is an excellent choice. {year} was {quality_phrase} for the region. {detail}",
		},
	}
}
