// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package api provides the HTTP handlers and Chi router for the
// Millesime service.
//
// Handler methods are split across files by concern:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response/parsing helpers
//   - handlers_vintage.go: /vintage/{year} and /year-range
//   - handlers_regions.go: /regions/{year} GeoJSON endpoint
//   - handlers_recommend.go: /recommend
//   - handlers_health.go: health and probe endpoints
package api

import (
	"time"

	"github.com/mvachon/millesime/internal/cache"
	"github.com/mvachon/millesime/internal/config"
	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/recommend"
	"github.com/mvachon/millesime/internal/vintage"
)

// Version is the service version reported by /health.
const Version = "1.0.0"

// Handler carries the dependencies of all API handlers.
type Handler struct {
	store     *vintage.Store
	geo       *vintage.GeoStore
	composer  *recommend.Composer
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler wires an API handler. The cache is optional; when cfg
// disables it, responses are computed per request.
func NewHandler(store *vintage.Store, geo *vintage.GeoStore, composer *recommend.Composer, cfg *config.Config) *Handler {
	var responseCache *cache.Cache
	if cfg == nil || cfg.Cache.Enabled {
		ttl := 5 * time.Minute
		if cfg != nil && cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		responseCache = cache.New(ttl)
	}

	return &Handler{
		store:     store,
		geo:       geo,
		composer:  composer,
		config:    cfg,
		cache:     responseCache,
		startTime: time.Now(),
	}
}

// ClearCache drops all cached responses.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("response cache cleared")
	}
}
