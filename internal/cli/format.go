// Package cli provides the CLI presentation layer for timewext.
// It handles output formatting and error reporting.
package cli

import (
	"fmt"
	"time"

	"github.com/xolan/timewext/internal/service"
)

// FormatElapsed formats a duration as minutes:seconds. Minutes are not
// wrapped into hours and seconds are zero padded.
// Examples: "0:59", "2:05", "61:01"
func FormatElapsed(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatCurrentLine formats the running interval for status lines:
// "<description> [<m>:<ss>]"
func FormatCurrentLine(status service.CurrentStatus) string {
	return fmt.Sprintf("%s [%s]", status.Description, FormatElapsed(status.Elapsed))
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
