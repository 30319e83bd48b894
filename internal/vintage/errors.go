// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package vintage

import (
	"errors"
)

// DataUnavailableError indicates a backing data file is missing or
// malformed. It maps to a 503 response at the API boundary; the fix is
// operational (restore the file and restart), never a retry.
type DataUnavailableError struct {
	// Cause is the human-readable message surfaced to clients,
	// e.g. "Vintage data file not found."
	Cause string

	// Err is the underlying error, for logs.
	Err error
}

func (e *DataUnavailableError) Error() string {
	return e.Cause
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// IsDataUnavailable reports whether err is a DataUnavailableError.
func IsDataUnavailable(err error) bool {
	var target *DataUnavailableError
	return errors.As(err, &target)
}
