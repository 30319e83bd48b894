// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/mvachon/millesime/internal/middleware"
)

// Router assembles the HTTP surface around a Handler.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware
// factory.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// Setup configures all routes on a Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order to every route.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.RequestLogger)

	// Health endpoints get a permissive limiter so monitoring probes
	// never compete with data traffic.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Data endpoints: vintage lookups, GeoJSON overlay, recommendations.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.Compression)

		r.Get("/vintage/{year}", router.handler.VintageByYear)
		r.Get("/year-range", router.handler.YearRange)
		r.Get("/regions/{year}", router.handler.RegionsByYear)
		r.Get("/recommend", router.handler.Recommend)
	})

	// Observability.
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}

// NewServer builds the http.Server for the configured listener.
func (router *Router) NewServer(addr string, timeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router.Setup(),
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * timeout,
	}
}
