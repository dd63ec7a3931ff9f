package handlers

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xolan/timewext/internal/cli"
	"github.com/xolan/timewext/internal/config"
	"github.com/xolan/timewext/internal/ctt"
)

// testNow is 10:02:05 UTC on the day of the sample intervals
var testNow = time.Date(2024, time.January, 15, 10, 2, 5, 0, time.UTC)

type recordingTracker struct {
	records []ctt.Record
	err     error
}

func (r *recordingTracker) Track(_ context.Context, rec ctt.Record) error {
	r.records = append(r.records, rec)
	return r.err
}

// setupTestDeps returns deps reading input from stdin and recording
// ctt calls, plus the captured streams and exit code.
func setupTestDeps(t *testing.T, stdin string) (*cli.Deps, *recordingTracker, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	t.Setenv("CLICOLOR_FORCE", "")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0
	tracker := &recordingTracker{}

	deps := &cli.Deps{
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  strings.NewReader(stdin),
		Exit:   func(code int) { exitCode = code },
		Now:    func() time.Time { return testNow },
		NewTracker: func(*cli.Deps, string, bool) ctt.Tracker {
			return tracker
		},
		Config: config.DefaultConfig(),
	}

	return deps, tracker, stdout, stderr, &exitCode
}

// input builds extension input from header lines and a JSON body
func input(body string, header ...string) string {
	return strings.Join(append([]string{"debug: off"}, header...), "\n") + "\n\n" + body
}
