// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mvachon/millesime/docs" // Import generated swagger docs
	"github.com/mvachon/millesime/internal/api"
	"github.com/mvachon/millesime/internal/config"
	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/recommend"
	"github.com/mvachon/millesime/internal/supervisor"
	"github.com/mvachon/millesime/internal/supervisor/services"
	"github.com/mvachon/millesime/internal/vintage"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("vintage_path", cfg.Data.VintagePath).
		Str("geojson_path", cfg.Data.GeoJSONPath).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	store := vintage.NewStore(cfg.Data.VintagePath)
	geo := vintage.NewGeoStore(cfg.Data.GeoJSONPath)

	composer, err := recommend.NewComposer(store, recommend.DefaultPreferences(), recommend.CuratedNotes())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation composer")
	}

	handler := api.NewHandler(store, geo, composer, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := router.NewServer(addr, cfg.Server.Timeout)

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewWarmupService(store, geo))
	tree.AddAPIService(services.NewHTTPService(server, 10*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
