// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/models"
	"github.com/mvachon/millesime/internal/vintage"
)

// sanitizeLogValue strips control characters so request-supplied
// strings cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes the standard envelope with caching headers and a
// weak ETag over the body.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

// respondGeoJSON writes a bare FeatureCollection. Map clients consume
// this directly, so it bypasses the APIResponse envelope.
func respondGeoJSON(w http.ResponseWriter, fc *models.FeatureCollection) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(fc)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal GeoJSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write GeoJSON response")
	}
}

// generateETag hashes the body with FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondDataError maps store failures to HTTP. DataUnavailableError
// surfaces as 503 with its cause as the message; anything else is an
// internal error.
func respondDataError(w http.ResponseWriter, err error) {
	if vintage.IsDataUnavailable(err) {
		respondError(w, http.StatusServiceUnavailable, "DATA_UNAVAILABLE", err.Error(), err)
		return
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
}

// yearParam parses the {year} path parameter. ok is false when the
// segment is not an integer; the caller decides the error message.
func yearParam(value string) (int, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return year, true
}

// checkYearRange validates year against the dataset's declared bounds.
// It writes the error response itself and reports whether the request
// may proceed.
func (h *Handler) checkYearRange(w http.ResponseWriter, year int) bool {
	minYear, maxYear, err := h.store.YearRange()
	if err != nil {
		respondDataError(w, err)
		return false
	}
	if year < minYear || year > maxYear {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("Year must be between %d and %d.", minYear, maxYear), nil)
		return false
	}
	return true
}

// successEnvelope builds a success response around data, stamping the
// query duration and cache provenance.
func successEnvelope(data interface{}, started time.Time, cached bool) *models.APIResponse {
	return &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(started).Milliseconds(),
			Cached:      cached,
		},
	}
}
