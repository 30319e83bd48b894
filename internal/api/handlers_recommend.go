// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"
	"time"

	"github.com/mvachon/millesime/internal/cache"
	"github.com/mvachon/millesime/internal/logging"
)

// Recommend handles GET /api/v1/recommend?year=<int>&significance=<string>.
//
// Unrecognized significance values are silently normalized to "other";
// that substitution is part of the contract, not an error. A year with
// no vintage data returns a populated result with a message, not a
// failure status.
//
// @Summary Gift recommendation for a year and occasion
// @Description Ranks every region's vintage for the year under the occasion's preferences and returns a primary pick plus up to three alternatives.
// @Tags Recommend
// @Produce json
// @Param year query int true "Gift year (e.g. the recipient's birth year)"
// @Param significance query string false "Occasion: birthday, anniversary, wedding, graduation, retirement, memorial, other" default(other)
// @Success 200 {object} models.APIResponse{data=models.RecommendationResult} "Recommendation"
// @Failure 400 {object} models.APIResponse "Year missing or outside the dataset's declared range"
// @Failure 503 {object} models.APIResponse "Vintage data file unavailable"
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	rawYear := r.URL.Query().Get("year")
	year, ok := yearParam(rawYear)
	if rawYear == "" || !ok || year == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "year parameter is required.", nil)
		return
	}
	if !h.checkYearRange(w, year) {
		return
	}

	significance := r.URL.Query().Get("significance")
	if significance == "" {
		significance = "other"
	}

	type recommendParams struct {
		Year         int    `json:"year"`
		Significance string `json:"significance"`
	}
	cacheKey := cache.GenerateKey("recommend", recommendParams{Year: year, Significance: significance})
	if h.cache != nil {
		if hit, ok := h.cache.Get(cacheKey); ok {
			respondJSON(w, http.StatusOK, successEnvelope(hit, started, true))
			return
		}
	}

	result, err := h.composer.Recommend(r.Context(), year, significance)
	if err != nil {
		respondDataError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(cacheKey, result)
	}

	event := logging.Ctx(r.Context()).Info().
		Int("year", year).
		Str("significance", sanitizeLogValue(significance)).
		Str("resolved", result.Significance)
	if result.Primary != nil {
		event = event.Str("primary", result.Primary.RegionKey)
	}
	event.Msg("recommendation served")

	respondJSON(w, http.StatusOK, successEnvelope(result, started, false))
}
