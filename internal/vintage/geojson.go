// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package vintage

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/metrics"
	"github.com/mvachon/millesime/internal/models"
)

// noDataDescription is injected for regions the vintage dataset knows
// but has no record for in the requested year. GeoJSON-only regions get
// score/tier only, with no description key.
const noDataDescription = "No vintage data available for this year."

// GeoStore provides read access to the wine-region GeoJSON file, with
// the same load-once contract as Store.
type GeoStore struct {
	path   string
	logger zerolog.Logger

	once   sync.Once
	fc     *models.FeatureCollection
	err    error
	loaded atomic.Bool
}

// NewGeoStore creates a store backed by the GeoJSON file at path.
func NewGeoStore(path string) *GeoStore {
	return &GeoStore{
		path:   path,
		logger: logging.With().Str("component", "geojson").Logger(),
	}
}

// Load eagerly loads the feature collection. Idempotent.
func (g *GeoStore) Load() error {
	_, err := g.collection()
	return err
}

// Loaded reports whether the file has been loaded successfully,
// without triggering a load.
func (g *GeoStore) Loaded() bool {
	return g.loaded.Load()
}

// MergedForYear returns a new FeatureCollection whose feature
// properties are overlaid with each region's vintage record for the
// given year:
//
//   - region known, year present: all vintage record fields merged in
//   - region known, year absent: score 0, quality_tier "no_data", and
//     an explanatory description
//   - region unknown to the vintage dataset: score 0 and quality_tier
//     "no_data" only — no description key is injected
//
// The stored collection is never mutated; property maps are copied per
// call. Geometry is shared (it is opaque, immutable bytes).
func (g *GeoStore) MergedForYear(store *Store, year int) (*models.FeatureCollection, error) {
	fc, err := g.collection()
	if err != nil {
		return nil, err
	}
	data, err := store.dataset()
	if err != nil {
		return nil, err
	}

	yearKey := strconv.Itoa(year)
	merged := &models.FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]models.Feature, 0, len(fc.Features)),
	}

	for i := range fc.Features {
		feature := &fc.Features[i]
		props := make(map[string]interface{}, len(feature.Properties)+5)
		for k, v := range feature.Properties {
			props[k] = v
		}

		region, known := data.Regions[feature.RegionKey()]
		switch {
		case known:
			if record, ok := region.Vintages[yearKey]; ok {
				props["score"] = record.Score
				props["quality_tier"] = record.QualityTier
				props["description"] = record.Description
				props["drinking_window"] = record.DrinkingWindow
				props["notable_wines"] = record.NotableWines
			} else {
				props["score"] = float64(0)
				props["quality_tier"] = models.TierNoData
				props["description"] = noDataDescription
			}
		default:
			props["score"] = float64(0)
			props["quality_tier"] = models.TierNoData
		}

		merged.Features = append(merged.Features, models.Feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   feature.Geometry,
		})
	}

	return merged, nil
}

func (g *GeoStore) collection() (*models.FeatureCollection, error) {
	g.once.Do(func() {
		g.fc, g.err = g.loadFile()
		if g.err != nil {
			g.logger.Error().Err(g.err).Str("path", g.path).Msg("geojson load failed")
			return
		}
		g.loaded.Store(true)
		g.logger.Info().
			Str("path", g.path).
			Int("features", len(g.fc.Features)).
			Msg("geojson regions loaded")
	})
	return g.fc, g.err
}

func (g *GeoStore) loadFile() (*models.FeatureCollection, error) {
	raw, err := os.ReadFile(g.path)
	if err != nil {
		metrics.RecordDatasetLoad("geojson", "not_found")
		return nil, &DataUnavailableError{Cause: "GeoJSON regions file not found.", Err: err}
	}

	var fc models.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		metrics.RecordDatasetLoad("geojson", "malformed")
		return nil, &DataUnavailableError{Cause: "GeoJSON regions file is malformed.", Err: err}
	}

	if fc.Type != "FeatureCollection" {
		metrics.RecordDatasetLoad("geojson", "malformed")
		return nil, &DataUnavailableError{
			Cause: "GeoJSON regions file is malformed.",
			Err:   fmt.Errorf("unexpected root type %q", fc.Type),
		}
	}

	metrics.RecordDatasetLoad("geojson", "success")
	return &fc, nil
}
