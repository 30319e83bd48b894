// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package config loads and validates service configuration using
// Koanf v2 with layered sources: struct defaults, an optional YAML
// config file, and environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Millesime server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Logging   LoggingConfig   `koanf:"logging"`
	Cache     CacheConfig     `koanf:"cache"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// DataConfig points at the two read-only data files the service loads
// wholesale into memory at startup. Neither file is ever written.
type DataConfig struct {
	VintagePath string `koanf:"vintage_path"`
	GeoJSONPath string `koanf:"geojson_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// CacheConfig controls the TTL response cache in front of the
// recommendation and GeoJSON-merge computations. Both are pure
// functions of (request, dataset), so caching is purely a CPU saver.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// RateLimitConfig configures per-IP request limiting on data routes.
// Health endpoints use a fixed permissive tier regardless.
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Disabled bool          `koanf:"disabled"`
}

// CORSConfig lists the origins allowed to call the API from browsers.
// The original deployment served a separate map frontend, so CORS is
// permissive by default.
type CORSConfig struct {
	Origins []string `koanf:"origins"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8310,
			Timeout: 30 * time.Second,
		},
		Data: DataConfig{
			VintagePath: "data/vintage_data.json",
			GeoJSONPath: "data/wine_regions.geojson",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
			Disabled: false,
		},
		CORS: CORSConfig{
			Origins: []string{"*"},
		},
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range [1, 65535]", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}
	if c.Data.VintagePath == "" {
		return fmt.Errorf("data.vintage_path must not be empty")
	}
	if c.Data.GeoJSONPath == "" {
		return fmt.Errorf("data.geojson_path must not be empty")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache is enabled, got %v", c.Cache.TTL)
	}
	if !c.RateLimit.Disabled {
		if c.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive, got %v", c.RateLimit.Window)
		}
	}
	return nil
}
