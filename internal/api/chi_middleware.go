// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/mvachon/millesime/internal/config"
)

// ChiMiddleware builds the router's CORS and rate-limit middleware
// from configuration.
type ChiMiddleware struct {
	corsHandler func(http.Handler) http.Handler
	rateLimit   config.RateLimitConfig
}

// NewChiMiddleware wires the middleware factory from the service
// config. A nil config falls back to the built-in defaults.
func NewChiMiddleware(cfg *config.Config) *ChiMiddleware {
	origins := []string{"*"}
	rateLimit := config.RateLimitConfig{Requests: 100, Window: time.Minute}
	if cfg != nil {
		if len(cfg.CORS.Origins) > 0 {
			origins = cfg.CORS.Origins
		}
		rateLimit = cfg.RateLimit
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	return &ChiMiddleware{
		corsHandler: corsHandler,
		rateLimit:   rateLimit,
	}
}

// CORS returns the configured CORS middleware. The API is read-only,
// so only GET and preflight OPTIONS are allowed.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.corsHandler
}

// RateLimit returns the default per-IP limiter for data endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.rateLimitCustom(m.rateLimit.Requests, m.rateLimit.Window)
}

// RateLimitHealth is a permissive limiter for health endpoints so
// monitoring probes are never starved by the data-route budget.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.rateLimitCustom(1000, time.Minute)
}

func (m *ChiMiddleware) rateLimitCustom(requests int, window time.Duration) func(http.Handler) http.Handler {
	if m.rateLimit.Disabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
