// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package metrics provides Prometheus instrumentation for Millesime:
// API endpoint latency and throughput, dataset load outcomes,
// recommendation traffic by occasion, and response cache efficiency.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Dataset metrics. Loads happen at most once per process per file,
	// so these counters mostly distinguish clean starts from broken data.
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"file", "result"}, // result: "success", "not_found", "malformed"
	)

	DatasetRegions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_regions",
			Help: "Number of wine regions in the loaded vintage dataset",
		},
	)

	// Recommendation metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendations composed, by occasion",
		},
		[]string{"occasion"},
	)

	// Response cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records one dataset load attempt.
func RecordDatasetLoad(file, result string) {
	DatasetLoadsTotal.WithLabelValues(file, result).Inc()
}

// RecordRecommendation records one composed recommendation.
func RecordRecommendation(occasion string) {
	RecommendationsTotal.WithLabelValues(occasion).Inc()
}

// RecordCacheResult records a cache hit or miss.
func RecordCacheResult(hit bool) {
	if hit {
		CacheHitsTotal.Inc()
	} else {
		CacheMissesTotal.Inc()
	}
}

// StatusCodeLabel formats an HTTP status code as a metric label.
func StatusCodeLabel(code int) string {
	return strconv.Itoa(code)
}
