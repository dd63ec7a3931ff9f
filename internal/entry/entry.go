// Package entry models Timewarrior intervals and the small amount of
// interpretation the extensions apply to them.
package entry

import (
	"strings"
	"time"
)

// DescriptionSeparator joins multiple description tags.
const DescriptionSeparator = "; "

// Entry is one tracked interval as reported by Timewarrior.
// A nil End means the interval is still open.
type Entry struct {
	ID         int
	Start      time.Time
	End        *time.Time
	Tags       []string
	Annotation string
}

// IsOpen reports whether the interval is still being tracked.
func (e Entry) IsOpen() bool {
	return e.End == nil
}

// Elapsed returns the time tracked so far relative to now. Closed entries
// report their full length. Negative values (clock skew) are clamped to zero.
func (e Entry) Elapsed(now time.Time) time.Duration {
	until := now
	if e.End != nil {
		until = *e.End
	}
	d := until.Sub(e.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Description guesses a human readable description from the tags.
// Tags containing a space are treated as free text; short labels are only
// used when no such tag exists. The result may be empty or misleading when
// entries do not follow that convention.
func Description(e Entry) string {
	var descs []string
	for _, tag := range e.Tags {
		if strings.Contains(tag, " ") {
			descs = append(descs, tag)
		}
	}
	if len(descs) == 0 {
		descs = e.Tags
	}
	return strings.Join(descs, DescriptionSeparator)
}

// HasProject reports whether the entry belongs to project, either tagged
// with it exactly or with a dotted sub-project such as "project.phase1".
func HasProject(e Entry, project string) bool {
	prefix := project + "."
	for _, tag := range e.Tags {
		if tag == project || strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// FirstOpen returns the first open entry, if any.
func FirstOpen(entries []Entry) (Entry, bool) {
	for _, e := range entries {
		if e.IsOpen() {
			return e, true
		}
	}
	return Entry{}, false
}

// FilterByProject returns the entries belonging to project, preserving order.
func FilterByProject(entries []Entry, project string) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if HasProject(e, project) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
