// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mvachon/millesime/internal/cache"
	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/models"
)

// VintageByYear handles GET /api/v1/vintage/{year}.
//
// @Summary Vintage quality by year
// @Description Returns every region's vintage record for the given year. Regions without data for that year are omitted.
// @Tags Vintage
// @Produce json
// @Param year path int true "Vintage year"
// @Success 200 {object} models.APIResponse{data=models.VintageYear} "Vintage records for the year"
// @Failure 400 {object} models.APIResponse "Year outside the dataset's declared range"
// @Failure 503 {object} models.APIResponse "Vintage data file unavailable"
// @Router /vintage/{year} [get]
func (h *Handler) VintageByYear(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	year, ok := yearParam(chi.URLParam(r, "year"))
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "year must be an integer.", nil)
		return
	}
	if !h.checkYearRange(w, year) {
		return
	}

	cacheKey := cache.GenerateKey("vintage", year)
	if h.cache != nil {
		if hit, ok := h.cache.Get(cacheKey); ok {
			respondJSON(w, http.StatusOK, successEnvelope(hit, started, true))
			return
		}
	}

	rows, err := h.store.VintagesForYear(year)
	if err != nil {
		respondDataError(w, err)
		return
	}

	payload := models.VintageYear{Year: year, Regions: rows}
	if h.cache != nil {
		h.cache.Set(cacheKey, payload)
	}

	logging.Ctx(r.Context()).Debug().
		Int("year", year).
		Int("regions", len(rows)).
		Msg("vintage year served")

	respondJSON(w, http.StatusOK, successEnvelope(payload, started, false))
}

// YearRange handles GET /api/v1/year-range.
//
// @Summary Dataset year bounds
// @Description Returns the inclusive [min_year, max_year] range the vintage dataset covers.
// @Tags Vintage
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.YearRange} "Year bounds"
// @Failure 503 {object} models.APIResponse "Vintage data file unavailable"
// @Router /year-range [get]
func (h *Handler) YearRange(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	minYear, maxYear, err := h.store.YearRange()
	if err != nil {
		respondDataError(w, err)
		return
	}

	payload := models.YearRange{MinYear: minYear, MaxYear: maxYear}
	respondJSON(w, http.StatusOK, successEnvelope(payload, started, false))
}
