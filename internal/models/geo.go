// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package models

import (
	"github.com/goccy/go-json"
)

// FeatureCollection is a GeoJSON FeatureCollection (RFC 7946).
// Geometry is kept opaque: the service only reads and merges feature
// properties, never the coordinate data.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON feature. Properties carry the region
// attributes authored into the file (region_key, display_name, ...)
// and receive the vintage record fields when merged for a year.
type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

// RegionKey extracts the region_key property, or "" if absent.
func (f *Feature) RegionKey() string {
	key, _ := f.Properties["region_key"].(string)
	return key
}
