package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xolan/timewext/internal/ctt"
	"github.com/xolan/timewext/internal/entry"
	apperrors "github.com/xolan/timewext/internal/errors"
	"github.com/xolan/timewext/internal/logging"
	"github.com/xolan/timewext/internal/protocol"
	"github.com/xolan/timewext/internal/timeutil"
)

// ExportService selects project intervals and records them with ctt
type ExportService struct {
	tracker ctt.Tracker
	loc     *time.Location
}

// NewExportService creates a new ExportService. loc is the zone ctt
// timestamps are rendered in; nil keeps Timewarrior's UTC reading.
func NewExportService(tracker ctt.Tracker, loc *time.Location) *ExportService {
	return &ExportService{
		tracker: tracker,
		loc:     loc,
	}
}

// ResolveProjects reads the source and destination project from the header.
// The ctt project defaults to the source project when unset or blank.
func ResolveProjects(cfg protocol.Config) (project, cttProject string, err error) {
	project = cfg.Get(KeyProject)
	if project == "" {
		return "", "", apperrors.NewUsageError(
			fmt.Sprintf("Set %s to the project you want to export:", KeyProject),
			fmt.Sprintf("  $ timew config %s my_proj", KeyProject),
		)
	}
	return project, cfg.GetOrDefault(KeyCttProject, project), nil
}

// Plan selects the closed intervals of the configured project and builds
// their ctt records, preserving input order.
func (s *ExportService) Plan(cfg protocol.Config, entries []entry.Entry) (*ExportPlan, error) {
	project, cttProject, err := ResolveProjects(cfg)
	if err != nil {
		return nil, err
	}

	log := logging.NewLogger("export")
	plan := &ExportPlan{
		Project:    project,
		CttProject: cttProject,
	}

	for _, e := range entry.FilterByProject(entries, project) {
		plan.Matched++
		if e.IsOpen() {
			plan.SkippedOpen++
			log.WithField("id", e.ID).Debug("skipping open interval")
			continue
		}
		plan.Items = append(plan.Items, ExportItem{
			Entry: e,
			Record: ctt.Record{
				Start:       timeutil.FormatCTT(e.Start, s.loc),
				End:         timeutil.FormatCTT(*e.End, s.loc),
				Project:     cttProject,
				Description: entry.Description(e),
			},
		})
	}

	log.WithField("project", project).
		WithField("total", len(entries)).
		WithField("matched", plan.Matched).
		WithField("exporting", len(plan.Items)).
		Debug("export planned")
	return plan, nil
}

// Run tracks every planned item in order, calling done after each success.
// The first failure stops the run; items already tracked stay tracked.
// It returns how many items were tracked.
func (s *ExportService) Run(ctx context.Context, plan *ExportPlan, done func(ExportItem)) (int, error) {
	for i, item := range plan.Items {
		if err := s.tracker.Track(ctx, item.Record); err != nil {
			return i, err
		}
		if done != nil {
			done(item)
		}
	}
	return len(plan.Items), nil
}
