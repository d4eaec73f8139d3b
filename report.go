package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

func printReport(report Report, inputLabel string, topN int) {
	fmt.Println("Staff Task Miss Audit")
	fmt.Println(strings.Repeat("=", 38))
	fmt.Printf("Input: %s\n", inputLabel)
	if report.Summary.AsOf != "" {
		fmt.Printf("As of: %s\n", report.Summary.AsOf)
	}
	fmt.Printf("Gap tolerance: %d days\n", report.Summary.GapToleranceDays)
	fmt.Printf("Valid rows: %d", report.ValidRows)
	if report.SkippedRows > 0 {
		fmt.Printf(" (skipped %d)", report.SkippedRows)
	}
	fmt.Println()

	if report.Summary.Empty {
		fmt.Println("\nNo missed tasks found.")
	} else {
		fmt.Printf("Total issues: %d\n", report.Summary.TotalIssues)
		fmt.Printf("Employees affected: %d | Tasks affected: %d\n", report.Summary.EmployeesAffected, report.Summary.TasksAffected)
		fmt.Printf("Avg days missed: %.1f\n", report.Summary.AvgDaysMissed)
		fmt.Printf("Critical: %d | High: %d | Medium: %d | Low: %d\n",
			report.Summary.PriorityBreakdown[PriorityCritical],
			report.Summary.PriorityBreakdown[PriorityHigh],
			report.Summary.PriorityBreakdown[PriorityMedium],
			report.Summary.PriorityBreakdown[PriorityLow],
		)
		fmt.Printf("Escalate: %d | Follow-up: %d\n",
			report.Summary.ActionBreakdown[ActionEscalate],
			report.Summary.ActionBreakdown[ActionFollowUp],
		)
		fmt.Printf("Most issues: %s | Most missed task: %s\n", report.Summary.TopEmployee, report.Summary.TopTask)

		fmt.Println("\nTop findings")
		fmt.Println(strings.Repeat("-", 38))
		shown := report.Findings
		if topN > 0 && len(shown) > topN {
			shown = shown[:topN]
		}
		for _, finding := range shown {
			fmt.Printf("%s | %s | %s | %s | %d days | %s\n",
				finding.Employee,
				finding.Task,
				finding.Action,
				finding.Priority,
				finding.DaysMissed,
				dateRangeLabel(finding),
			)
		}

		if len(report.Employees) > 0 {
			fmt.Println("\nEmployee summary")
			fmt.Println(strings.Repeat("-", 38))
			for _, entry := range report.Employees {
				fmt.Printf("%s | issues %d | days missed %d | escalations %d\n",
					entry.Employee, entry.Issues, entry.DaysMissed, entry.Escalations)
			}
		}
	}

	if len(report.RowErrors) > 0 {
		fmt.Println("\nSkipped rows")
		fmt.Println(strings.Repeat("-", 38))
		for _, rowErr := range report.RowErrors {
			if rowErr.Detail != "" {
				fmt.Printf("row %d: %s (%s)\n", rowErr.Row, rowErr.Reason, rowErr.Detail)
			} else {
				fmt.Printf("row %d: %s\n", rowErr.Row, rowErr.Reason)
			}
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Println("\nWarnings")
		fmt.Println(strings.Repeat("-", 38))
		for _, warning := range report.Warnings {
			fmt.Println(warning)
		}
	}
}

func dateRangeLabel(finding Finding) string {
	start := formatDate(finding.DateRangeStart)
	end := formatDate(finding.DateRangeEnd)
	if start == end {
		return start
	}
	return start + " to " + end
}

// actionPlanLine renders one finding for the plain-text action plan.
func actionPlanLine(finding Finding) string {
	return fmt.Sprintf("%s: %s missed %s on %s (%d days), priority %s",
		finding.Action,
		finding.Employee,
		finding.Task,
		dateRangeLabel(finding),
		finding.DaysMissed,
		finding.Priority,
	)
}

func writeJSON(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// writeFindingsCSV exports findings at or above minPriority as flat rows.
func writeFindingsCSV(report Report, path string, minPriority string) error {
	priority, ok := parsePriority(minPriority)
	if !ok {
		return fmt.Errorf("invalid --min-priority value: %s", minPriority)
	}
	threshold, _ := priorityRank(priority)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		"employee",
		"task",
		"date_range_start",
		"date_range_end",
		"action",
		"priority",
		"days_missed",
	}); err != nil {
		return err
	}

	for _, finding := range report.Findings {
		rank, _ := priorityRank(finding.Priority)
		if rank < threshold {
			continue
		}
		record := []string{
			finding.Employee,
			finding.Task,
			formatDate(finding.DateRangeStart),
			formatDate(finding.DateRangeEnd),
			string(finding.Action),
			string(finding.Priority),
			fmt.Sprintf("%d", finding.DaysMissed),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeActionPlan(report Report, path string) error {
	var builder strings.Builder
	for _, finding := range report.Findings {
		builder.WriteString(actionPlanLine(finding))
		builder.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(builder.String()), 0644)
}
