// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvachon/millesime/internal/cache"
	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/models"
)

// RegionsByYear handles GET /api/v1/regions/{year}.
//
// Unlike the other endpoints this returns a bare GeoJSON
// FeatureCollection (application/geo+json), not the APIResponse
// envelope, so map libraries can consume it directly. Each feature's
// properties are merged with the region's vintage record for the year.
//
// @Summary Wine regions GeoJSON with vintage overlay
// @Description Returns the wine-region FeatureCollection with each feature's properties merged with that region's vintage record for the year.
// @Tags Regions
// @Produce json
// @Param year path int true "Vintage year"
// @Success 200 {object} models.FeatureCollection "GeoJSON FeatureCollection"
// @Failure 400 {object} models.APIResponse "Year outside the dataset's declared range"
// @Failure 503 {object} models.APIResponse "Backing data file unavailable"
// @Router /regions/{year} [get]
func (h *Handler) RegionsByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(chi.URLParam(r, "year"))
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "year must be an integer.", nil)
		return
	}
	if !h.checkYearRange(w, year) {
		return
	}

	cacheKey := cache.GenerateKey("regions", year)
	if h.cache != nil {
		if hit, ok := h.cache.Get(cacheKey); ok {
			if fc, ok := hit.(*models.FeatureCollection); ok {
				respondGeoJSON(w, fc)
				return
			}
		}
	}

	merged, err := h.geo.MergedForYear(h.store, year)
	if err != nil {
		respondDataError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(cacheKey, merged)
	}

	logging.Ctx(r.Context()).Debug().
		Int("year", year).
		Int("features", len(merged.Features)).
		Msg("regions geojson served")

	respondGeoJSON(w, merged)
}
