// Package ctt records exported intervals with the ctt time tracker.
package ctt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	apperrors "github.com/xolan/timewext/internal/errors"
	"github.com/xolan/timewext/internal/logging"
)

// Record is one interval to be tracked, already in ctt's formats.
type Record struct {
	Start       string
	End         string
	Project     string
	Description string
}

// Args returns the ctt arguments for r, without the executable.
func (r Record) Args() []string {
	return []string{"track", "--start", r.Start, "--end", r.End, r.Project}
}

// Tracker records intervals in the destination tool.
type Tracker interface {
	Track(ctx context.Context, r Record) error
}

// TrackerFunc adapts a function to the Tracker interface.
type TrackerFunc func(ctx context.Context, r Record) error

// Track calls f(ctx, r).
func (f TrackerFunc) Track(ctx context.Context, r Record) error {
	return f(ctx, r)
}

// Exec runs the ctt executable once per record, piping the description to
// its stdin. The child's own output is passed through.
type Exec struct {
	Command string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExec creates an Exec for the given executable.
func NewExec(command string, stdout, stderr io.Writer) *Exec {
	return &Exec{
		Command: command,
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Track runs `<command> track --start S --end E PROJECT` and waits for it.
// A non-zero exit is returned as a command error.
func (e *Exec) Track(ctx context.Context, r Record) error {
	args := r.Args()
	argv := append([]string{e.Command}, args...)

	log := logging.NewLogger("ctt")
	log.WithField("argv", strings.Join(argv, " ")).Debug("running ctt")

	cmd := exec.CommandContext(ctx, e.Command, args...)
	cmd.Stdin = strings.NewReader(r.Description)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		status := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		}
		log.WithError(err).WithField("status", status).Debug("ctt failed")
		return apperrors.NewCommandError(argv, status, err)
	}
	return nil
}

// DryRun prints the invocations Exec would perform without running them.
type DryRun struct {
	Command string
	Out     io.Writer
}

// Track writes the command line and the description that would be piped.
func (d *DryRun) Track(_ context.Context, r Record) error {
	argv := append([]string{d.Command}, r.Args()...)
	_, err := fmt.Fprintf(d.Out, "   would run: %s <<< %q\n", strings.Join(quoteAll(argv), " "), r.Description)
	return err
}

func quoteAll(args []string) []string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			quoted[i] = fmt.Sprintf("%q", a)
			continue
		}
		quoted[i] = a
	}
	return quoted
}
