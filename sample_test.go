package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSampleRowsDeterministic(t *testing.T) {
	asOf := date(2024, time.June, 10)
	first := sampleRows(asOf)
	second := sampleRows(asOf)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("sample data differs between calls (-first +second):\n%s", diff)
	}
	if len(first) == 0 {
		t.Fatalf("expected sample rows")
	}
}

func TestSampleRowsAnalyzable(t *testing.T) {
	rows := sampleRows(date(2024, time.June, 10))

	report, err := analyze(rows, DefaultConfig())
	if err != nil {
		t.Fatalf("analyze sample: %v", err)
	}
	if report.ValidRows != len(rows) {
		t.Fatalf("sample rows should all validate: %d of %d", report.ValidRows, len(rows))
	}
	if len(report.Findings) == 0 {
		t.Fatalf("expected findings from planted miss patterns")
	}
	if report.Summary.TotalIssues != len(report.Findings) {
		t.Fatalf("summary total %d != findings %d", report.Summary.TotalIssues, len(report.Findings))
	}
}
