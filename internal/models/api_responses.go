// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all JSON
// endpoints. Status is "success" or "error"; Error is populated only
// for error responses.
//
// The GeoJSON endpoint is the one exception: it returns a bare
// FeatureCollection so map clients can consume it directly.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error payload.
//
// Codes used by Millesime:
//   - VALIDATION_ERROR: invalid or missing request parameters (400)
//   - DATA_UNAVAILABLE: backing data file missing or malformed (503)
//   - NOT_FOUND: unknown route or resource (404)
//   - METHOD_NOT_ALLOWED: wrong HTTP method (405)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the /health response payload. The service is alive
// independent of dataset state; the dataset flags report whether the
// backing files have been loaded successfully.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	VintageLoaded bool    `json:"vintage_loaded"`
	GeoJSONLoaded bool    `json:"geojson_loaded"`
	Uptime        float64 `json:"uptime_seconds"`
}
