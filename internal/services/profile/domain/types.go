// Package domain defines the core types and interfaces for the profile service
package domain

import (
	"time"

	"sailormouth/internal/core/report"
)

// DocumentedLimit is the usual ceiling of a reddit comment listing. It is advice for
// callers only, larger limits are passed through and the source stops when it runs dry
const DocumentedLimit = 999

// Record is one text unit to scan, tagged with the group it belongs to
type Record struct {
	ID        string
	Body      string
	Group     string
	CreatedAt time.Time
}

// Input controls one profiling run
type Input struct {
	User string `json:"user" validate:"required,min=3,max=20,handle"`
	// Limit caps the records fetched; zero means the configured default
	Limit int `json:"limit" validate:"omitempty,min=1"`
	// Words overrides the configured target word list when non-empty
	Words   []string `json:"words,omitempty" validate:"omitempty,max=5000,dive,required,max=100"`
	Sort    string   `json:"sort,omitempty"`
	Verbose bool     `json:"verbose"`
}

// Result is the finished run
type Result struct {
	RunID  string        `json:"run_id"`
	User   string        `json:"user"`
	Words  int           `json:"words"`
	Mode   string        `json:"normalize"`
	Report report.Report `json:"report"`
}

// RunEvent is emitted once per run, successful or not
type RunEvent struct {
	RunID       string
	User        string
	Scanned     int
	WithMatch   int
	Groups      int
	Occurrences int
	Elapsed     time.Duration
	Err         error
}
