package main

import "fmt"

type ValidationResult struct {
	Records   []TaskRecord
	RowErrors []RowError
	Warnings  []string
}

// validateRows normalizes the batch with partial-success semantics: bad
// rows are collected and skipped, the rest proceed. Only an empty batch is
// fatal.
func validateRows(rows []RawRow, cfg Config) (ValidationResult, error) {
	if len(rows) == 0 {
		return ValidationResult{}, &SchemaError{Msg: "no data rows to analyze"}
	}

	var result ValidationResult
	seen := map[string]int{}
	for i, row := range rows {
		if row.Line == 0 {
			row.Line = i + 1
		}
		record, rowErr := normalizeRow(row, cfg)
		if rowErr != nil {
			result.RowErrors = append(result.RowErrors, *rowErr)
			continue
		}
		seen[record.Employee+"|"+record.Task+"|"+formatDate(record.Date)]++
		result.Records = append(result.Records, record)
	}

	duplicates := 0
	for _, count := range seen {
		if count > 1 {
			duplicates += count - 1
		}
	}
	if duplicates > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d duplicate employee/task/date rows detected", duplicates))
	}
	if len(result.Records) == 0 {
		result.Warnings = append(result.Warnings, "no valid rows to analyze")
	}
	return result, nil
}
