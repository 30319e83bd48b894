// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Port != 8310 {
		t.Errorf("default port = %d, want 8310", cfg.Server.Port)
	}
	if cfg.Data.VintagePath == "" || cfg.Data.GeoJSONPath == "" {
		t.Error("default data paths must not be empty")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative timeout", func(c *Config) { c.Server.Timeout = -time.Second }, true},
		{"empty vintage path", func(c *Config) { c.Data.VintagePath = "" }, true},
		{"empty geojson path", func(c *Config) { c.Data.GeoJSONPath = "" }, true},
		{"cache enabled with zero ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"cache disabled ignores ttl", func(c *Config) { c.Cache.Enabled = false; c.Cache.TTL = 0 }, false},
		{"rate limit zero requests", func(c *Config) { c.RateLimit.Requests = 0 }, true},
		{"rate limit disabled ignores requests", func(c *Config) { c.RateLimit.Disabled = true; c.RateLimit.Requests = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError = %v", err, tt.wantError)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"SERVER_HOST", "server.host"},
		{"DATA_VINTAGE_PATH", "data.vintage_path"},
		{"DATA_GEOJSON_PATH", "data.geojson_path"},
		{"LOGGING_LEVEL", "logging.level"},
		{"CACHE_TTL", "cache.ttl"},
		{"RATE_LIMIT_REQUESTS", "rate_limit.requests"},
		{"CORS_ORIGINS", "cors.origins"},
		{"PATH", ""},
		{"HOME", ""},
		{"SERVER_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadLayering(t *testing.T) {
	// Config file overrides defaults; env overrides the file.
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
data:
  vintage_path: /srv/millesime/vintage_data.json
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should win: port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Data.VintagePath != "/srv/millesime/vintage_data.json" {
		t.Errorf("file should override default: vintage_path = %q", cfg.Data.VintagePath)
	}
	if cfg.Data.GeoJSONPath != "data/wine_regions.geojson" {
		t.Errorf("default should survive: geojson_path = %q", cfg.Data.GeoJSONPath)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CORS_ORIGINS", "https://wine.example.com, https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := []string{"https://wine.example.com", "https://app.example.com"}
	if len(cfg.CORS.Origins) != len(want) {
		t.Fatalf("origins = %v, want %v", cfg.CORS.Origins, want)
	}
	for i := range want {
		if cfg.CORS.Origins[i] != want[i] {
			t.Errorf("origins[%d] = %q, want %q", i, cfg.CORS.Origins[i], want[i])
		}
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SERVER_PORT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail for port 0")
	}
}
