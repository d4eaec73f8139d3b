package main

import (
	"sort"
	"strings"
	"time"
)

type pairKey struct {
	Employee string
	Task     string
}

type dayStatus struct {
	anyMissed    bool
	anyCompleted bool
}

// analyze runs the full pipeline: validation, miss grouping, priority
// classification, finding generation, summary. A SchemaError aborts before
// grouping; everything else lands in the report.
func analyze(rows []RawRow, cfg Config) (Report, error) {
	validation, err := validateRows(rows, cfg)
	if err != nil {
		return Report{}, err
	}

	runs := groupMisses(validation.Records, cfg)
	findings := make([]Finding, 0, len(runs))
	for _, run := range runs {
		findings = append(findings, makeFinding(run, classifyPriority(run, cfg)))
	}
	sortFindings(findings)

	warnings := validation.Warnings
	if len(validation.Records) > 0 && len(findings) == 0 {
		warnings = append(warnings, "no missed tasks found in the data")
	}

	return Report{
		Summary:     buildSummary(findings, cfg),
		Employees:   buildEmployeeSummary(findings),
		Findings:    findings,
		RowErrors:   validation.RowErrors,
		Warnings:    warnings,
		ValidRows:   len(validation.Records),
		SkippedRows: len(validation.RowErrors),
	}, nil
}

// groupMisses partitions records by employee/task, collapses duplicate
// dates under the configured policy, and clusters the missed dates into
// runs. A new run starts whenever the gap to the previous missed date
// exceeds the tolerance; the default of 3 days bridges a weekend.
func groupMisses(records []TaskRecord, cfg Config) []MissRun {
	byPair := map[pairKey]map[time.Time]*dayStatus{}
	for _, record := range records {
		key := pairKey{Employee: record.Employee, Task: record.Task}
		days := byPair[key]
		if days == nil {
			days = map[time.Time]*dayStatus{}
			byPair[key] = days
		}
		day := days[record.Date]
		if day == nil {
			day = &dayStatus{}
			days[record.Date] = day
		}
		if record.Completed {
			day.anyCompleted = true
		} else {
			day.anyMissed = true
		}
	}

	keys := make([]pairKey, 0, len(byPair))
	for key := range byPair {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Employee != keys[j].Employee {
			return keys[i].Employee < keys[j].Employee
		}
		return keys[i].Task < keys[j].Task
	})

	var runs []MissRun
	for _, key := range keys {
		var missed []time.Time
		for date, day := range byPair[key] {
			if dayMissed(*day, cfg.DuplicatePolicy) {
				missed = append(missed, date)
			}
		}
		if len(missed) == 0 {
			continue
		}
		sort.Slice(missed, func(i, j int) bool { return missed[i].Before(missed[j]) })

		current := []time.Time{missed[0]}
		for i := 1; i < len(missed); i++ {
			if daysBetween(missed[i-1], missed[i]) <= cfg.GapToleranceDays {
				current = append(current, missed[i])
				continue
			}
			runs = append(runs, MissRun{Employee: key.Employee, Task: key.Task, Dates: current})
			current = []time.Time{missed[i]}
		}
		runs = append(runs, MissRun{Employee: key.Employee, Task: key.Task, Dates: current})
	}
	return runs
}

func dayMissed(day dayStatus, policy string) bool {
	if policy == DuplicatePreferCompleted {
		return day.anyMissed && !day.anyCompleted
	}
	return day.anyMissed
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// classifyPriority derives a baseline tier from run length, then bumps one
// tier (capped at Critical) when the task name contains a sensitivity
// keyword. Same run and keyword list always yield the same tier.
func classifyPriority(run MissRun, cfg Config) Priority {
	var priority Priority
	switch days := run.DayCount(); {
	case days >= 5:
		priority = PriorityCritical
	case days >= 3:
		priority = PriorityHigh
	case days == 2:
		priority = PriorityMedium
	default:
		priority = PriorityLow
	}
	if taskIsSensitive(run.Task, cfg.SensitivityKeywords) {
		priority = bumpPriority(priority)
	}
	return priority
}

func bumpPriority(p Priority) Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityCritical
	default:
		return PriorityCritical
	}
}

func taskIsSensitive(task string, keywords []string) bool {
	lower := strings.ToLower(task)
	for _, keyword := range keywords {
		keyword = normalizeToken(keyword)
		if keyword != "" && strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func makeFinding(run MissRun, priority Priority) Finding {
	action := ActionFollowUp
	if run.DayCount() >= 2 {
		action = ActionEscalate
	}
	return Finding{
		Employee:       run.Employee,
		Task:           run.Task,
		DateRangeStart: run.Dates[0],
		DateRangeEnd:   run.Dates[len(run.Dates)-1],
		Action:         action,
		Priority:       priority,
		DaysMissed:     run.DayCount(),
	}
}
