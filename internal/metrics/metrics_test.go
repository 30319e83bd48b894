// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/year-range", "200"))
	RecordAPIRequest("GET", "/api/v1/year-range", "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/year-range", "200"))

	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge after inc = %v, want %v", got, base+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge after dec = %v, want %v", got, base)
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	before := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("vintage", "success"))
	RecordDatasetLoad("vintage", "success")
	after := testutil.ToFloat64(DatasetLoadsTotal.WithLabelValues("vintage", "success"))

	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestRecordCacheResult(t *testing.T) {
	hits := testutil.ToFloat64(CacheHitsTotal)
	misses := testutil.ToFloat64(CacheMissesTotal)

	RecordCacheResult(true)
	RecordCacheResult(false)

	if got := testutil.ToFloat64(CacheHitsTotal); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMissesTotal); got != misses+1 {
		t.Errorf("misses = %v, want %v", got, misses+1)
	}
}

func TestStatusCodeLabel(t *testing.T) {
	if got := StatusCodeLabel(404); got != "404" {
		t.Errorf("StatusCodeLabel(404) = %q, want 404", got)
	}
}
