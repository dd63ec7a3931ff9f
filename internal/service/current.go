package service

import (
	"time"

	"github.com/xolan/timewext/internal/entry"
	"github.com/xolan/timewext/internal/logging"
	"github.com/xolan/timewext/internal/timeutil"
)

// CurrentService finds the interval that is being tracked right now
type CurrentService struct{}

// NewCurrentService creates a new CurrentService
func NewCurrentService() *CurrentService {
	return &CurrentService{}
}

// Current returns the first open interval and how long it has been running
// at now. ok is false when nothing is being tracked.
func (s *CurrentService) Current(entries []entry.Entry, now time.Time) (status CurrentStatus, ok bool) {
	log := logging.NewLogger("current")

	e, ok := entry.FirstOpen(entries)
	if !ok {
		log.WithField("entries", len(entries)).Debug("no open interval")
		return CurrentStatus{}, false
	}

	status = CurrentStatus{
		Entry:       e,
		Description: entry.Description(e),
		Elapsed:     e.Elapsed(now),
	}
	log.WithField("id", e.ID).
		WithField("start", timeutil.FormatTimewarrior(e.Start)).
		WithField("elapsed", status.Elapsed).
		Debug("open interval found")
	return status, true
}
