package main

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRowsEmptyBatch(t *testing.T) {
	_, err := validateRows(nil, DefaultConfig())
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestValidateRowsPartialSuccess(t *testing.T) {
	rows := []RawRow{
		{Employee: "Jane", Task: "Report", Date: "2024-01-10", Status: "done", Line: 2},
		{Employee: "John", Task: "Report", Date: "garbage", Status: "done", Line: 3},
		{Employee: "Emily", Task: "Report", Date: "2024-01-10", Status: "maybe", Line: 4},
	}

	result, err := validateRows(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("validateRows: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(result.Records))
	}
	if len(result.RowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(result.RowErrors))
	}
	if result.RowErrors[0].Row != 3 || result.RowErrors[0].Reason != ReasonInvalidDate {
		t.Fatalf("unexpected first row error: %+v", result.RowErrors[0])
	}
	if result.RowErrors[1].Row != 4 || result.RowErrors[1].Reason != ReasonUnknownStatus {
		t.Fatalf("unexpected second row error: %+v", result.RowErrors[1])
	}
}

func TestValidateRowsDuplicateWarning(t *testing.T) {
	rows := []RawRow{
		{Employee: "Jane", Task: "Report", Date: "2024-01-10", Status: "done"},
		{Employee: "jane", Task: "Report", Date: "2024-01-10", Status: "not done"},
	}

	result, err := validateRows(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("validateRows: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("duplicates must not drop rows, got %d records", len(result.Records))
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "1 duplicate") {
		t.Fatalf("expected duplicate warning, got %v", result.Warnings)
	}
}

func TestValidateRowsNoneValid(t *testing.T) {
	rows := []RawRow{
		{Employee: "", Task: "Report", Date: "2024-01-10", Status: "done"},
	}

	result, err := validateRows(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("a batch with only bad rows must not be fatal: %v", err)
	}
	if len(result.Records) != 0 {
		t.Fatalf("expected no valid records")
	}
	found := false
	for _, warning := range result.Warnings {
		if strings.Contains(warning, "no valid rows") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nothing-to-analyze warning, got %v", result.Warnings)
	}
}
