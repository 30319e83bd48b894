// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

// Package vintage provides read-only access to the curated vintage
// dataset and the wine-region GeoJSON file.
//
// Both stores load their backing file exactly once per process,
// guarded by sync.Once; after a successful load every lookup is served
// from memory with no further I/O. A failed load is remembered: all
// operations return the same DataUnavailableError until the process is
// restarted with fixed data. There is no retry and no partial-result
// fallback.
package vintage
