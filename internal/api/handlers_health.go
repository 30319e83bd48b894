// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"
	"time"

	"github.com/mvachon/millesime/internal/models"
)

// Health handles GET /api/v1/health.
//
// The process is alive independent of dataset state; status reports
// "ok" when both backing files are loaded and "degraded" otherwise.
//
// @Summary Service health
// @Description Returns service health including dataset load state and uptime.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	vintageLoaded := h.store != nil && h.store.Loaded()
	geoLoaded := h.geo != nil && h.geo.Loaded()

	status := "ok"
	if !vintageLoaded || !geoLoaded {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Version:       Version,
		VintageLoaded: vintageLoaded,
		GeoJSONLoaded: geoLoaded,
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live (Kubernetes liveness).
// Always 200 while the process runs.
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of dataset state.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles GET /api/v1/health/ready (Kubernetes readiness).
// Ready only once both data files have loaded; the service cannot
// answer data requests before that.
//
// @Summary Readiness probe
// @Description Returns 200 OK once both backing data files are loaded; 503 before that.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Data files not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	vintageLoaded := h.store != nil && h.store.Loaded()
	geoLoaded := h.geo != nil && h.geo.Loaded()

	if !vintageLoaded || !geoLoaded {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data: map[string]interface{}{
				"ready":          false,
				"vintage_loaded": vintageLoaded,
				"geojson_loaded": geoLoaded,
			},
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    "DATA_UNAVAILABLE",
				Message: "Service is not ready",
			},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": true,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
