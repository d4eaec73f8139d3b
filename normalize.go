package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// normalizeStatus maps a raw status string onto the completed flag. The
// second return is false when the value matches neither configured set;
// callers must reject such rows rather than guess.
func normalizeStatus(value string, cfg Config) (bool, bool) {
	token := normalizeToken(value)
	for _, status := range cfg.CompletedStatuses {
		if normalizeToken(status) == token {
			return true, true
		}
	}
	for _, status := range cfg.MissedStatuses {
		if normalizeToken(status) == token {
			return false, true
		}
	}
	return false, false
}

func parseDate(value string, layouts []string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return dateOnly(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %s", value)
}

// normalizeRow turns a raw row into a TaskRecord or reports why it cannot.
func normalizeRow(row RawRow, cfg Config) (TaskRecord, *RowError) {
	employee := titleCase(row.Employee)
	task := strings.TrimSpace(row.Task)
	if employee == "" {
		return TaskRecord{}, &RowError{Row: row.Line, Reason: ReasonMissingField, Detail: "empty employee"}
	}
	if task == "" {
		return TaskRecord{}, &RowError{Row: row.Line, Reason: ReasonMissingField, Detail: "empty task"}
	}

	date, err := parseDate(row.Date, cfg.DateLayouts)
	if err != nil {
		return TaskRecord{}, &RowError{Row: row.Line, Reason: ReasonInvalidDate, Detail: err.Error()}
	}

	if strings.TrimSpace(row.Status) == "" {
		return TaskRecord{}, &RowError{Row: row.Line, Reason: ReasonMissingField, Detail: "empty status"}
	}
	completed, ok := normalizeStatus(row.Status, cfg)
	if !ok {
		return TaskRecord{}, &RowError{Row: row.Line, Reason: ReasonUnknownStatus, Detail: fmt.Sprintf("unrecognized status %q", strings.TrimSpace(row.Status))}
	}

	return TaskRecord{
		Employee:  employee,
		Task:      task,
		Date:      date,
		Completed: completed,
	}, nil
}

// titleCase trims and title-cases an employee name so "john smith" and
// "John Smith" land in the same partition.
func titleCase(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func dateOnly(value time.Time) time.Time {
	if value.IsZero() {
		return value
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}
