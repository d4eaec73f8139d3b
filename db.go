package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DBConfig struct {
	URL    string
	Schema string
	Tag    string
}

func sanitizeSchema(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("db schema is required")
	}
	valid := regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	if !valid.MatchString(value) {
		return "", fmt.Errorf("invalid schema name: %s", value)
	}
	return value, nil
}

// seedDatabase initializes the schema and stores the current report only
// when no audit runs exist yet.
func seedDatabase(report Report, cfg DBConfig) (string, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "", err
	}

	if err := ensureSchema(ctx, db, schema); err != nil {
		return "", err
	}

	var count int
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s.audit_runs`, schema)).Scan(&count); err != nil {
		return "", err
	}
	if count > 0 {
		fmt.Println("Audit data already present; skipping seed.")
		return "", nil
	}

	return storeReportTx(ctx, db, report, schema, cfg.Tag)
}

func storeReportInDB(report Report, cfg DBConfig) (string, error) {
	schema, err := sanitizeSchema(cfg.Schema)
	if err != nil {
		return "", err
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return "", err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return "", err
	}

	if err := ensureSchema(ctx, db, schema); err != nil {
		return "", err
	}

	return storeReportTx(ctx, db, report, schema, cfg.Tag)
}

func storeReportTx(ctx context.Context, db *sql.DB, report Report, schema string, tag string) (string, error) {
	runID := uuid.New()

	var asOf sql.NullTime
	if report.Summary.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", report.Summary.AsOf)
		if err != nil {
			return "", fmt.Errorf("invalid as-of date %q: %w", report.Summary.AsOf, err)
		}
		asOf = sql.NullTime{Time: parsed, Valid: true}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s.audit_runs (
			id, as_of, gap_tolerance_days, total_issues, employees_affected,
			tasks_affected, avg_days_missed, critical_count, high_count,
			medium_count, low_count, escalate_count, follow_up_count,
			valid_rows, skipped_rows, run_tag
		) VALUES (
			$1,$2,$3,$4,$5,
			$6,$7,$8,$9,
			$10,$11,$12,$13,
			$14,$15,$16
		)`, schema),
		runID,
		asOf,
		report.Summary.GapToleranceDays,
		report.Summary.TotalIssues,
		report.Summary.EmployeesAffected,
		report.Summary.TasksAffected,
		report.Summary.AvgDaysMissed,
		report.Summary.PriorityBreakdown[PriorityCritical],
		report.Summary.PriorityBreakdown[PriorityHigh],
		report.Summary.PriorityBreakdown[PriorityMedium],
		report.Summary.PriorityBreakdown[PriorityLow],
		report.Summary.ActionBreakdown[ActionEscalate],
		report.Summary.ActionBreakdown[ActionFollowUp],
		report.ValidRows,
		report.SkippedRows,
		nullString(tag),
	)
	if err != nil {
		_ = tx.Rollback()
		return "", err
	}

	insertFindingSQL := fmt.Sprintf(`
		INSERT INTO %s.audit_findings (
			id, run_id, employee, task, date_range_start, date_range_end,
			action, priority, days_missed
		) VALUES (
			$1,$2,$3,$4,$5,$6,
			$7,$8,$9
		)`, schema)

	for _, finding := range report.Findings {
		_, err = tx.ExecContext(ctx, insertFindingSQL,
			uuid.New(),
			runID,
			finding.Employee,
			finding.Task,
			dateOnly(finding.DateRangeStart),
			dateOnly(finding.DateRangeEnd),
			string(finding.Action),
			string(finding.Priority),
			finding.DaysMissed,
		)
		if err != nil {
			_ = tx.Rollback()
			return "", err
		}
	}

	insertEmployeeSQL := fmt.Sprintf(`
		INSERT INTO %s.audit_employee_summary (
			id, run_id, employee, issues, days_missed, escalations
		) VALUES (
			$1,$2,$3,$4,$5,$6
		)`, schema)

	for _, entry := range report.Employees {
		_, err = tx.ExecContext(ctx, insertEmployeeSQL,
			uuid.New(),
			runID,
			entry.Employee,
			entry.Issues,
			entry.DaysMissed,
			entry.Escalations,
		)
		if err != nil {
			_ = tx.Rollback()
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID.String(), nil
}

func ensureSchema(ctx context.Context, db *sql.DB, schema string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema)); err != nil {
		return err
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.audit_runs (
			id uuid PRIMARY KEY,
			as_of date,
			gap_tolerance_days integer NOT NULL,
			total_issues integer NOT NULL,
			employees_affected integer NOT NULL,
			tasks_affected integer NOT NULL,
			avg_days_missed numeric(8,2) NOT NULL,
			critical_count integer NOT NULL,
			high_count integer NOT NULL,
			medium_count integer NOT NULL,
			low_count integer NOT NULL,
			escalate_count integer NOT NULL,
			follow_up_count integer NOT NULL,
			valid_rows integer NOT NULL,
			skipped_rows integer NOT NULL,
			run_tag text,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.audit_findings (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.audit_runs(id) ON DELETE CASCADE,
			employee text NOT NULL,
			task text NOT NULL,
			date_range_start date NOT NULL,
			date_range_end date NOT NULL,
			action text NOT NULL,
			priority text NOT NULL,
			days_missed integer NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.audit_employee_summary (
			id uuid PRIMARY KEY,
			run_id uuid NOT NULL REFERENCES %s.audit_runs(id) ON DELETE CASCADE,
			employee text NOT NULL,
			issues integer NOT NULL,
			days_missed integer NOT NULL,
			escalations integer NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`, schema, schema))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_audit_findings_run_idx ON %s.audit_findings (run_id)`, schema, schema))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_audit_findings_priority_idx ON %s.audit_findings (priority)`, schema, schema))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_audit_employee_summary_run_idx ON %s.audit_employee_summary (run_id)`, schema, schema))
	return err
}

func nullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
