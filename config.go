package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultGapToleranceDays = 3
	defaultTopN             = 10
)

// Duplicate-resolution policies for rows sharing an employee/task/date but
// disagreeing on status.
const (
	DuplicateAnyMissed       = "any_missed"
	DuplicatePreferCompleted = "prefer_completed"
)

type Config struct {
	GapToleranceDays    int      `yaml:"gap_tolerance_days"`
	SensitivityKeywords []string `yaml:"sensitivity_keywords"`
	CompletedStatuses   []string `yaml:"completed_statuses"`
	MissedStatuses      []string `yaml:"missed_statuses"`
	DateLayouts         []string `yaml:"date_layouts"`
	DuplicatePolicy     string   `yaml:"duplicate_policy"`
}

func DefaultConfig() Config {
	return Config{
		GapToleranceDays:    defaultGapToleranceDays,
		SensitivityKeywords: []string{"safety", "security", "compliance", "audit", "emergency", "critical"},
		CompletedStatuses:   []string{"done", "complete", "completed"},
		MissedStatuses:      []string{"not done", "notdone", "incomplete", "missed"},
		// Trial order matters: ISO, then US, then EU. First layout that
		// parses a value wins.
		DateLayouts:     []string{"2006-01-02", "2006/01/02", "01/02/2006", "02/01/2006"},
		DuplicatePolicy: DuplicateAnyMissed,
	}
}

// LoadConfig returns defaults when path is empty; otherwise it reads the
// YAML file and fills unset fields from the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	if loaded.GapToleranceDays != 0 {
		cfg.GapToleranceDays = loaded.GapToleranceDays
	}
	if len(loaded.SensitivityKeywords) > 0 {
		cfg.SensitivityKeywords = loaded.SensitivityKeywords
	}
	if len(loaded.CompletedStatuses) > 0 {
		cfg.CompletedStatuses = loaded.CompletedStatuses
	}
	if len(loaded.MissedStatuses) > 0 {
		cfg.MissedStatuses = loaded.MissedStatuses
	}
	if len(loaded.DateLayouts) > 0 {
		cfg.DateLayouts = loaded.DateLayouts
	}
	if loaded.DuplicatePolicy != "" {
		cfg.DuplicatePolicy = loaded.DuplicatePolicy
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.GapToleranceDays < 1 {
		return errors.New("gap_tolerance_days must be >= 1")
	}
	if len(c.DateLayouts) == 0 {
		return errors.New("date_layouts must not be empty")
	}
	if len(c.CompletedStatuses) == 0 || len(c.MissedStatuses) == 0 {
		return errors.New("completed_statuses and missed_statuses must not be empty")
	}
	completed := map[string]bool{}
	for _, status := range c.CompletedStatuses {
		completed[normalizeToken(status)] = true
	}
	for _, status := range c.MissedStatuses {
		if completed[normalizeToken(status)] {
			return fmt.Errorf("status %q listed as both completed and missed", status)
		}
	}
	switch c.DuplicatePolicy {
	case DuplicateAnyMissed, DuplicatePreferCompleted:
	default:
		return fmt.Errorf("duplicate_policy must be %q or %q, got %q", DuplicateAnyMissed, DuplicatePreferCompleted, c.DuplicatePolicy)
	}
	return nil
}

func dbURLFromEnv() string {
	if value := strings.TrimSpace(os.Getenv("TASK_MISS_AUDIT_DB_URL")); value != "" {
		return value
	}
	return strings.TrimSpace(os.Getenv("DATABASE_URL"))
}
