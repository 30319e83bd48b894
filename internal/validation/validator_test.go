// Millesime - Wine Vintage Quality and Gift Recommendation Service
// Copyright 2026 M. Vachon (mvachon)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mvachon/millesime

package validation

import (
	"strings"
	"testing"
)

type recommendQuery struct {
	Year         int    `validate:"required,gte=1970,lte=2023"`
	Significance string `validate:"omitempty,occasion"`
}

func TestValidateStructValid(t *testing.T) {
	q := recommendQuery{Year: 1982, Significance: "birthday"}
	if err := ValidateStruct(&q); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructYearBounds(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantTag string
	}{
		{"below range", 1899, "gte"},
		{"above range", 2050, "lte"},
		{"missing", 0, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&recommendQuery{Year: tt.year})
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := err.Errors()[0].Tag(); got != tt.wantTag {
				t.Errorf("tag = %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestOccasionTag(t *testing.T) {
	valid := []string{"birthday", "anniversary", "wedding", "graduation", "retirement", "memorial", "other"}
	for _, occasion := range valid {
		if err := ValidateStruct(&recommendQuery{Year: 2000, Significance: occasion}); err != nil {
			t.Errorf("occasion %q rejected: %v", occasion, err)
		}
	}

	err := ValidateStruct(&recommendQuery{Year: 2000, Significance: "housewarming"})
	if err == nil {
		t.Fatal("unrecognized occasion accepted")
	}
	if !strings.Contains(err.Error(), "recognized occasion") {
		t.Errorf("error = %q, want occasion message", err.Error())
	}
}

func TestToAPIErrorSingleField(t *testing.T) {
	err := ValidateStruct(&recommendQuery{Year: 1899})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Year" {
		t.Errorf("details.field = %v, want Year", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultipleFields(t *testing.T) {
	err := ValidateStruct(&recommendQuery{Year: 1899, Significance: "housewarming"})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("errors = %d, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("details.fields missing for multi-field error")
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("message %q should join field messages", apiErr.Message)
	}
}
