package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func main() {
	inputPath := flag.String("input", "", "Path to daily report CSV")
	useSample := flag.Bool("sample", false, "Analyze generated sample data instead of a CSV file")
	configPath := flag.String("config", "", "Optional YAML config path")
	asOf := flag.String("as-of", "", "Report as-of date (YYYY-MM-DD); also ends the sample window")
	gapTolerance := flag.Int("gap-tolerance", 0, "Override gap tolerance in days")
	topN := flag.Int("top", defaultTopN, "Top N findings to show")
	jsonOut := flag.String("json", "", "Optional JSON report output path")
	csvOut := flag.String("csv", "", "Optional CSV output path for findings")
	planOut := flag.String("plan", "", "Optional action plan text output path")
	minPriority := flag.String("min-priority", "Low", "Minimum priority for CSV export (Low, Medium, High, Critical)")
	dbEnabled := flag.Bool("db", false, "Store report in Postgres (requires TASK_MISS_AUDIT_DB_URL or DATABASE_URL)")
	dbSchema := flag.String("db-schema", "task_miss_audit", "Postgres schema for audit tables")
	dbTag := flag.String("db-tag", "", "Optional label for this audit run")
	initDB := flag.Bool("init-db", false, "Initialize database schema and seed data if empty")
	flag.Parse()

	if *inputPath == "" && !*useSample {
		exitWithError(errors.New("--input or --sample is required"))
	}
	if *inputPath != "" && *useSample {
		exitWithError(errors.New("use either --input or --sample, not both"))
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		exitWithError(err)
	}
	if *gapTolerance > 0 {
		cfg.GapToleranceDays = *gapTolerance
	}

	asOfDate := time.Now()
	if *asOf != "" {
		parsed, err := parseDate(*asOf, cfg.DateLayouts)
		if err != nil {
			exitWithError(fmt.Errorf("invalid --as-of date: %w", err))
		}
		asOfDate = parsed
	}
	asOfDate = dateOnly(asOfDate)

	var rows []RawRow
	inputLabel := "generated sample data"
	if *useSample {
		rows = sampleRows(asOfDate)
	} else {
		rows, err = loadRows(*inputPath)
		if err != nil {
			exitWithError(err)
		}
		inputLabel = filepath.Base(*inputPath)
	}

	report, err := analyze(rows, cfg)
	if err != nil {
		exitWithError(err)
	}
	report.Summary.AsOf = asOfDate.Format("2006-01-02")

	printReport(report, inputLabel, *topN)

	if *jsonOut != "" {
		if err := writeJSON(report, *jsonOut); err != nil {
			exitWithError(err)
		}
		fmt.Printf("\nJSON report saved to %s\n", *jsonOut)
	}

	if *csvOut != "" {
		if err := writeFindingsCSV(report, *csvOut, *minPriority); err != nil {
			exitWithError(err)
		}
		fmt.Printf("Findings CSV saved to %s\n", *csvOut)
	}

	if *planOut != "" {
		if err := writeActionPlan(report, *planOut); err != nil {
			exitWithError(err)
		}
		fmt.Printf("Action plan saved to %s\n", *planOut)
	}

	if *dbEnabled || *initDB {
		dbURL := dbURLFromEnv()
		if dbURL == "" {
			exitWithError(errors.New("database URL missing; set TASK_MISS_AUDIT_DB_URL or DATABASE_URL"))
		}
		dbCfg := DBConfig{
			URL:    dbURL,
			Schema: *dbSchema,
			Tag:    *dbTag,
		}
		seeded := false
		if *initDB {
			runID, err := seedDatabase(report, dbCfg)
			if err != nil {
				exitWithError(err)
			}
			if runID != "" {
				seeded = true
				fmt.Printf("\nSeeded Postgres with initial audit run (run_id=%s)\n", runID)
			}
		}
		if *dbEnabled {
			if seeded {
				fmt.Println("Skipped duplicate insert; current report already used for seed.")
			} else {
				runID, err := storeReportInDB(report, dbCfg)
				if err != nil {
					exitWithError(err)
				}
				fmt.Printf("\nStored audit run in Postgres (run_id=%s)\n", runID)
			}
		}
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
