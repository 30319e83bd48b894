// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package services

import (
	"context"

	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/vintage"
)

// WarmupService eagerly loads both data files at startup instead of on
// first request. Load failures are terminal for the process lifetime
// (the stores latch their error), so the service logs the failure and
// keeps the process up: the API keeps answering health probes and
// serving 503s until an operator fixes the data.
type WarmupService struct {
	store *vintage.Store
	geo   *vintage.GeoStore
}

// NewWarmupService wraps the two stores as a supervised warmup task.
func NewWarmupService(store *vintage.Store, geo *vintage.GeoStore) *WarmupService {
	return &WarmupService{store: store, geo: geo}
}

// Serve implements suture.Service. It loads once, then parks until
// shutdown; a warmup is not restartable work.
func (s *WarmupService) Serve(ctx context.Context) error {
	if err := s.store.Load(); err != nil {
		logging.Error().Err(err).Msg("vintage dataset warmup failed")
	}
	if err := s.geo.Load(); err != nil {
		logging.Error().Err(err).Msg("geojson warmup failed")
	}

	if s.store.Loaded() && s.geo.Loaded() {
		logging.Info().Msg("datasets warmed up")
	}

	<-ctx.Done()
	return ctx.Err()
}

// String identifies the service in supervisor logs.
func (s *WarmupService) String() string {
	return "dataset-warmup"
}
