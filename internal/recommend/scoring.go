// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package recommend

import "github.com/mvachon/millesime/internal/models"

// Score ranks a candidate vintage under an occasion preference. Pure
// function; no clamping and no upper bound:
//
//	base   = candidate score * 0.5
//	style  = 30 - rank*10 when the wine style is ranked (0-based)
//	region = max(20 - rank*5, 5) when the region key is ranked
//
// The style bonus would go negative from rank 3 on; preference lists
// are capped at three styles by Validate, and this deliberately stays
// unclamped to preserve the historical ranking.
func Score(candidate models.RegionVintage, pref OccasionPreference) float64 {
	score := candidate.Score * 0.5

	if rank := indexOf(pref.StylePreference, candidate.WineStyle); rank >= 0 {
		score += float64(30 - rank*10)
	}

	if rank := indexOf(pref.PreferRegions, candidate.RegionKey); rank >= 0 {
		bonus := 20 - rank*5
		if bonus < 5 {
			bonus = 5
		}
		score += float64(bonus)
	}

	return score
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}
