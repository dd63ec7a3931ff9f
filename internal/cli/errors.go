package cli

import (
	"fmt"
	"io"

	apperrors "github.com/xolan/timewext/internal/errors"
)

// ReportError writes a user-facing description of err to w and returns
// the exit status the process should end with.
func ReportError(w io.Writer, err error) int {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	switch appErr.Type {
	case apperrors.ErrorTypeUsage:
		_, _ = fmt.Fprintln(w, appErr.Message)
		for _, hint := range appErr.Hints {
			_, _ = fmt.Fprintln(w, hint)
		}
	case apperrors.ErrorTypeParse:
		_, _ = fmt.Fprintln(w, "Error: Failed to read Timewarrior input")
		_, _ = fmt.Fprintf(w, "Details: %s\n", detail(appErr))
		_, _ = fmt.Fprintln(w, "Hint: Run this extension through timew, e.g. 'timew report ctt'")
	case apperrors.ErrorTypeCommand:
		_, _ = fmt.Fprintf(w, "Error: %s\n", appErr.Message)
		if appErr.Cause != nil {
			_, _ = fmt.Fprintf(w, "Details: %v\n", appErr.Cause)
		}
		if appErr.ExitStatus < 0 {
			_, _ = fmt.Fprintln(w, "Hint: Check that ctt is installed and on PATH, or set ctt_command in the config file")
		}
	default:
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	}
	return apperrors.ExitCode(err)
}

func detail(e *apperrors.AppError) string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Fail reports err on the deps' stderr and exits with the mapped status
func Fail(d *Deps, err error) {
	d.Exit(ReportError(d.Stderr, err))
}

// WarnConfig prints a warning when the config file could not be used
func WarnConfig(d *Deps) {
	if d.ConfigErr == nil {
		return
	}
	_, _ = fmt.Fprintln(d.Stderr, "Warning: Ignoring config file, using defaults")
	_, _ = fmt.Fprintf(d.Stderr, "Details: %v\n", d.ConfigErr)
}
