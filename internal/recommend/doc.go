// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package recommend ranks vintage candidates for a gift occasion and
// renders the recommendation text.
//
// Ranking is a pure additive score (half the vintage score, plus
// ordered style and region bonuses from the occasion's preference),
// sorted with a stable sort so equal scores keep the store's
// deterministic region order. The top candidate becomes the primary
// recommendation, rendered with the occasion's template; up to three
// runners-up are rendered with a shared occasion-agnostic template.
package recommend
