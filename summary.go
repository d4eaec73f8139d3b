package main

import (
	"math"
	"sort"
)

func buildSummary(findings []Finding, cfg Config) Summary {
	summary := Summary{
		GapToleranceDays:  cfg.GapToleranceDays,
		PriorityBreakdown: map[Priority]int{},
		ActionBreakdown:   map[Action]int{},
	}
	if len(findings) == 0 {
		summary.Empty = true
		return summary
	}

	employees := map[string]int{}
	tasks := map[string]int{}
	totalDays := 0
	for _, finding := range findings {
		employees[finding.Employee]++
		tasks[finding.Task]++
		totalDays += finding.DaysMissed
		summary.PriorityBreakdown[finding.Priority]++
		summary.ActionBreakdown[finding.Action]++
	}

	summary.TotalIssues = len(findings)
	summary.EmployeesAffected = len(employees)
	summary.TasksAffected = len(tasks)
	summary.AvgDaysMissed = round1(float64(totalDays) / float64(len(findings)))
	summary.TopEmployee = topKey(employees)
	summary.TopTask = topKey(tasks)
	return summary
}

// topKey returns the key with the highest count; ties break on name so
// repeated runs stay stable.
func topKey(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || key < best)) {
			best = key
			bestCount = count
		}
	}
	return best
}

func buildEmployeeSummary(findings []Finding) []EmployeeSummary {
	byEmployee := map[string]*EmployeeSummary{}
	for _, finding := range findings {
		entry := byEmployee[finding.Employee]
		if entry == nil {
			entry = &EmployeeSummary{Employee: finding.Employee}
			byEmployee[finding.Employee] = entry
		}
		entry.Issues++
		entry.DaysMissed += finding.DaysMissed
		if finding.Action == ActionEscalate {
			entry.Escalations++
		}
	}

	result := make([]EmployeeSummary, 0, len(byEmployee))
	for _, entry := range byEmployee {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DaysMissed != result[j].DaysMissed {
			return result[i].DaysMissed > result[j].DaysMissed
		}
		return result[i].Employee < result[j].Employee
	})
	return result
}

// sortFindings orders by priority (Critical first), then days missed
// descending, then employee/task/start date for a stable report.
func sortFindings(findings []Finding) {
	sort.Slice(findings, func(i, j int) bool {
		rankI, _ := priorityRank(findings[i].Priority)
		rankJ, _ := priorityRank(findings[j].Priority)
		if rankI != rankJ {
			return rankI > rankJ
		}
		if findings[i].DaysMissed != findings[j].DaysMissed {
			return findings[i].DaysMissed > findings[j].DaysMissed
		}
		if findings[i].Employee != findings[j].Employee {
			return findings[i].Employee < findings[j].Employee
		}
		if findings[i].Task != findings[j].Task {
			return findings[i].Task < findings[j].Task
		}
		return findings[i].DateRangeStart.Before(findings[j].DateRangeStart)
	})
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
