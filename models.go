package main

import "time"

// RawRow is one unparsed input row. Line is the 1-based position in the
// source table, 0 when unknown.
type RawRow struct {
	Employee string
	Task     string
	Date     string
	Status   string
	Line     int
}

// TaskRecord is a normalized row: the date carries no time-of-day component.
type TaskRecord struct {
	Employee  string
	Task      string
	Date      time.Time
	Completed bool
}

// MissRun is a maximal cluster of missed dates for one employee/task pair.
// Dates are strictly increasing and consecutive dates are within the
// configured gap tolerance.
type MissRun struct {
	Employee string
	Task     string
	Dates    []time.Time
}

func (r MissRun) DayCount() int {
	return len(r.Dates)
}

type Action string

const (
	ActionFollowUp Action = "Follow-up"
	ActionEscalate Action = "Escalate"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func priorityRank(p Priority) (int, bool) {
	switch p {
	case PriorityLow:
		return 0, true
	case PriorityMedium:
		return 1, true
	case PriorityHigh:
		return 2, true
	case PriorityCritical:
		return 3, true
	default:
		return 0, false
	}
}

func parsePriority(value string) (Priority, bool) {
	switch normalizeToken(value) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	case "critical":
		return PriorityCritical, true
	default:
		return "", false
	}
}

type Finding struct {
	Employee       string    `json:"employee"`
	Task           string    `json:"task"`
	DateRangeStart time.Time `json:"date_range_start"`
	DateRangeEnd   time.Time `json:"date_range_end"`
	Action         Action    `json:"action"`
	Priority       Priority  `json:"priority"`
	DaysMissed     int       `json:"days_missed"`
}

// Row error reason codes.
const (
	ReasonInvalidDate   = "InvalidDate"
	ReasonUnknownStatus = "UnknownStatus"
	ReasonMissingField  = "MissingField"
)

// RowError records one skipped input row and why it was skipped.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Detail string `json:"detail,omitempty"`
}

// SchemaError is a fatal whole-batch rejection: empty dataset or required
// columns missing. Per-row problems are RowErrors, never SchemaErrors.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Msg
}

type Summary struct {
	AsOf              string           `json:"as_of,omitempty"`
	GapToleranceDays  int              `json:"gap_tolerance_days"`
	TotalIssues       int              `json:"total_issues"`
	EmployeesAffected int              `json:"employees_affected"`
	TasksAffected     int              `json:"tasks_affected"`
	AvgDaysMissed     float64          `json:"avg_days_missed"`
	Empty             bool             `json:"empty"`
	PriorityBreakdown map[Priority]int `json:"priority_breakdown"`
	ActionBreakdown   map[Action]int   `json:"action_breakdown"`
	TopEmployee       string           `json:"most_issues_employee,omitempty"`
	TopTask           string           `json:"most_missed_task,omitempty"`
}

type EmployeeSummary struct {
	Employee    string `json:"employee"`
	Issues      int    `json:"issues"`
	DaysMissed  int    `json:"days_missed"`
	Escalations int    `json:"escalations"`
}

type Report struct {
	Summary     Summary           `json:"summary"`
	Employees   []EmployeeSummary `json:"employee_summary"`
	Findings    []Finding         `json:"findings"`
	RowErrors   []RowError        `json:"row_errors,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	ValidRows   int               `json:"valid_rows"`
	SkippedRows int               `json:"skipped_rows"`
}
