package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadRows reads a CSV into raw rows. Header names are matched loosely
// (case, spaces, separators ignored) against a few common aliases; a
// missing required column is a SchemaError.
func loadRows(path string) ([]RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Msg: "input file is empty"}
		}
		return nil, fmt.Errorf("unable to read header: %w", err)
	}

	colMap := normalizeHeaders(headers)
	employeeIdx, ok := findColumn(colMap, []string{"employee", "employee_name", "staff", "staff_name", "name"})
	if !ok {
		return nil, &SchemaError{Msg: "missing Employee column"}
	}
	taskIdx, ok := findColumn(colMap, []string{"task", "task_name", "activity", "duty"})
	if !ok {
		return nil, &SchemaError{Msg: "missing Task column"}
	}
	dateIdx, ok := findColumn(colMap, []string{"date", "report_date", "day"})
	if !ok {
		return nil, &SchemaError{Msg: "missing Date column"}
	}
	statusIdx, ok := findColumn(colMap, []string{"status", "outcome", "result", "completion"})
	if !ok {
		return nil, &SchemaError{Msg: "missing Status column"}
	}

	var rows []RawRow
	line := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("unable to read CSV: %w", err)
		}
		line++
		if len(record) == 0 {
			continue
		}
		rows = append(rows, RawRow{
			Employee: getValue(record, employeeIdx),
			Task:     getValue(record, taskIdx),
			Date:     getValue(record, dateIdx),
			Status:   getValue(record, statusIdx),
			Line:     line,
		})
	}
	return rows, nil
}

func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
