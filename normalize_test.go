package main

import (
	"testing"
	"time"
)

func TestParseDateTrialOrder(t *testing.T) {
	layouts := DefaultConfig().DateLayouts
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2024-01-15", date(2024, time.January, 15)},
		{"2024/01/15", date(2024, time.January, 15)},
		// Ambiguous slash dates resolve US-first.
		{"01/02/2024", date(2024, time.January, 2)},
		// Month 25 fails the US layout, so the EU layout catches it.
		{"25/12/2024", date(2024, time.December, 25)},
	}
	for _, tc := range cases {
		got, err := parseDate(tc.value, layouts)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.value, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parse %q: expected %s, got %s", tc.value, formatDate(tc.want), formatDate(got))
		}
	}

	for _, bad := range []string{"", "not-a-date", "2024-13-40"} {
		if _, err := parseDate(bad, layouts); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	cfg := DefaultConfig()
	completedValues := []string{"Done", "COMPLETE", " completed "}
	for _, value := range completedValues {
		completed, ok := normalizeStatus(value, cfg)
		if !ok || !completed {
			t.Fatalf("expected %q to be completed", value)
		}
	}
	missedValues := []string{"Not Done", "NOTDONE", "incomplete", "Missed"}
	for _, value := range missedValues {
		completed, ok := normalizeStatus(value, cfg)
		if !ok || completed {
			t.Fatalf("expected %q to be missed", value)
		}
	}
	if _, ok := normalizeStatus("Pending", cfg); ok {
		t.Fatalf("expected Pending to be unrecognized")
	}
}

func TestNormalizeRowTitleCase(t *testing.T) {
	record, rowErr := normalizeRow(RawRow{
		Employee: "  john smith ",
		Task:     " Report ",
		Date:     "2024-01-10",
		Status:   "done",
	}, DefaultConfig())
	if rowErr != nil {
		t.Fatalf("unexpected row error: %+v", rowErr)
	}
	if record.Employee != "John Smith" {
		t.Fatalf("expected title-cased employee, got %q", record.Employee)
	}
	if record.Task != "Report" {
		t.Fatalf("expected trimmed task, got %q", record.Task)
	}
	if !record.Completed {
		t.Fatalf("expected completed record")
	}
}

func TestNormalizeRowErrors(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name   string
		row    RawRow
		reason string
	}{
		{"empty employee", RawRow{Task: "Report", Date: "2024-01-10", Status: "done"}, ReasonMissingField},
		{"empty task", RawRow{Employee: "Jane", Date: "2024-01-10", Status: "done"}, ReasonMissingField},
		{"empty status", RawRow{Employee: "Jane", Task: "Report", Date: "2024-01-10"}, ReasonMissingField},
		{"missing date", RawRow{Employee: "Jane", Task: "Report", Status: "done"}, ReasonInvalidDate},
		{"bad date", RawRow{Employee: "Jane", Task: "Report", Date: "13/13/2024", Status: "done"}, ReasonInvalidDate},
		{"unknown status", RawRow{Employee: "Jane", Task: "Report", Date: "2024-01-10", Status: "Pending"}, ReasonUnknownStatus},
	}
	for _, tc := range cases {
		_, rowErr := normalizeRow(tc.row, cfg)
		if rowErr == nil {
			t.Fatalf("%s: expected row error", tc.name)
		}
		if rowErr.Reason != tc.reason {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.reason, rowErr.Reason)
		}
	}
}
