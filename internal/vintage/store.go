// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package vintage

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/mvachon/millesime/internal/logging"
	"github.com/mvachon/millesime/internal/metrics"
	"github.com/mvachon/millesime/internal/models"
)

// Store provides read access to the vintage dataset. It is safe for
// concurrent use: the backing file is loaded at most once and the
// decoded dataset is immutable afterwards.
type Store struct {
	path   string
	logger zerolog.Logger

	once   sync.Once
	data   *models.Dataset
	err    error
	loaded atomic.Bool
}

// NewStore creates a store backed by the vintage data file at path.
// No I/O happens until the first lookup or an explicit Load.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.With().Str("component", "vintage").Logger(),
	}
}

// Load eagerly loads the dataset. It is idempotent; concurrent callers
// block until the single load completes.
func (s *Store) Load() error {
	_, err := s.dataset()
	return err
}

// Loaded reports whether the dataset has been loaded successfully.
// It never triggers a load.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// YearRange returns the inclusive year bounds declared in the dataset
// metadata.
func (s *Store) YearRange() (minYear, maxYear int, err error) {
	data, err := s.dataset()
	if err != nil {
		return 0, 0, err
	}
	return data.Metadata.YearRange[0], data.Metadata.YearRange[1], nil
}

// VintagesForYear returns one entry per region that has a vintage
// record for the given year. Regions without data for that year are
// omitted, not zero-filled. The order is deterministic (region key,
// ascending) so downstream stable sorts produce identical results
// across runs.
func (s *Store) VintagesForYear(year int) ([]models.RegionVintage, error) {
	data, err := s.dataset()
	if err != nil {
		return nil, err
	}

	yearKey := strconv.Itoa(year)

	keys := make([]string, 0, len(data.Regions))
	for key := range data.Regions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]models.RegionVintage, 0, len(keys))
	for _, key := range keys {
		region := data.Regions[key]
		record, ok := region.Vintages[yearKey]
		if !ok {
			continue
		}
		results = append(results, models.RegionVintage{
			RegionKey:      key,
			DisplayName:    region.DisplayName,
			Country:        region.Country,
			WineStyle:      region.WineStyle,
			PrimaryGrapes:  region.PrimaryGrapes,
			Score:          record.Score,
			QualityTier:    record.QualityTier,
			Description:    record.Description,
			DrinkingWindow: record.DrinkingWindow,
			NotableWines:   record.NotableWines,
		})
	}
	return results, nil
}

// RegionByKey looks up one region by its stable key.
func (s *Store) RegionByKey(key string) (models.Region, bool, error) {
	data, err := s.dataset()
	if err != nil {
		return models.Region{}, false, err
	}
	region, ok := data.Regions[key]
	return region, ok, nil
}

// dataset returns the loaded dataset, performing the one-time load on
// first call. The load outcome (data or error) is latched for the
// lifetime of the process.
func (s *Store) dataset() (*models.Dataset, error) {
	s.once.Do(func() {
		s.data, s.err = s.loadFile()
		if s.err != nil {
			s.logger.Error().Err(s.err).Str("path", s.path).Msg("vintage dataset load failed")
			return
		}
		s.loaded.Store(true)
		metrics.DatasetRegions.Set(float64(len(s.data.Regions)))
		s.logger.Info().
			Str("path", s.path).
			Int("regions", len(s.data.Regions)).
			Ints("year_range", s.data.Metadata.YearRange[:]).
			Msg("vintage dataset loaded")
	})
	return s.data, s.err
}

func (s *Store) loadFile() (*models.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		metrics.RecordDatasetLoad("vintage", "not_found")
		return nil, &DataUnavailableError{Cause: "Vintage data file not found.", Err: err}
	}

	var data models.Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		metrics.RecordDatasetLoad("vintage", "malformed")
		return nil, &DataUnavailableError{Cause: "Vintage data file is malformed.", Err: err}
	}

	if err := validateDataset(&data); err != nil {
		metrics.RecordDatasetLoad("vintage", "malformed")
		return nil, &DataUnavailableError{Cause: "Vintage data file is malformed.", Err: err}
	}

	metrics.RecordDatasetLoad("vintage", "success")
	return &data, nil
}

// validateDataset enforces the dataset invariants: a sane year range,
// at least one vintage per region, and quality tiers consistent with
// scores under the fixed threshold mapping.
func validateDataset(data *models.Dataset) error {
	if data.Regions == nil {
		return fmt.Errorf("dataset has no regions")
	}
	if data.Metadata.YearRange[0] == 0 || data.Metadata.YearRange[1] < data.Metadata.YearRange[0] {
		return fmt.Errorf("dataset year_range %v is invalid", data.Metadata.YearRange)
	}
	for key, region := range data.Regions {
		if len(region.Vintages) == 0 {
			return fmt.Errorf("region %q has no vintages", key)
		}
		for yearKey, record := range region.Vintages {
			if _, err := strconv.Atoi(yearKey); err != nil {
				return fmt.Errorf("region %q has non-numeric vintage year %q", key, yearKey)
			}
			if want := models.TierForScore(record.Score); record.QualityTier != want {
				return fmt.Errorf("region %q year %s: quality_tier %q inconsistent with score %v (want %q)",
					key, yearKey, record.QualityTier, record.Score, want)
			}
		}
	}
	return nil
}
