// Package service provides the business logic for the timewext extensions.
// It selects and prepares intervals; printing is left to the CLI layer.
package service

import (
	"time"

	"github.com/xolan/timewext/internal/ctt"
	"github.com/xolan/timewext/internal/entry"
)

// Header keys read by the ctt export.
const (
	KeyProject    = "reports.ctt.project"
	KeyCttProject = "reports.ctt.ctt_project"
)

// CurrentStatus describes the interval being tracked right now
type CurrentStatus struct {
	Entry       entry.Entry
	Description string
	Elapsed     time.Duration
}

// ExportItem pairs a selected interval with the ctt record built from it
type ExportItem struct {
	Entry  entry.Entry
	Record ctt.Record
}

// ExportPlan is the result of selecting intervals for a ctt export
type ExportPlan struct {
	Project     string // Timewarrior project tag being exported
	CttProject  string // ctt project the intervals are recorded under
	Items       []ExportItem
	Matched     int // Intervals tagged with the project, open ones included
	SkippedOpen int // Matched intervals skipped because they are still open
}
