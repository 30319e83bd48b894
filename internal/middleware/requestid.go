// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package middleware provides the HTTP middleware chain: request IDs,
// Prometheus instrumentation, request logging, and gzip compression.
package middleware

import (
	"context"
	"net/http"

	"github.com/mvachon/millesime/internal/logging"
)

type contextKey string

// RequestIDKey stores the request ID in the request context.
const RequestIDKey contextKey = "request_id"

// RequestID tags every request with a unique ID, echoed in the
// X-Request-ID response header and attached to the logging context.
// An ID supplied by an upstream proxy is kept as-is.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logging.ContextWithRequestID(ctx, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context, or "".
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
