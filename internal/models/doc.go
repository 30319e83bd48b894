// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package models defines the domain types shared across Millesime:
// the vintage dataset schema, GeoJSON feature types, recommendation
// payloads, and the standardized API response envelope.
//
// All types here are plain data with no behavior beyond derivation
// helpers (quality tiers from scores). They are decoded once from the
// static data files at startup and never mutated afterwards.
package models
