package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// TimewarriorLayout is the fixed-width UTC timestamp used by the Timewarrior
	// extension protocol, e.g. 20240115T093000Z.
	TimewarriorLayout = "20060102T150405Z"
	// CTTLayout is the timestamp layout accepted by `ctt track`, e.g. 2024-01-15-0930.
	CTTLayout = "2006-01-02-1504"
)

var (
	compactDateOnlyRe = regexp.MustCompile(`^\d{8}$`)
	missingZoneRe     = regexp.MustCompile(`^\d{8}T\d{6}$`)
)

// ParseTimewarrior parses a Timewarrior timestamp (YYYYMMDDTHHMMSSZ).
// The trailing Z is a literal marker; the result is always in UTC.
func ParseTimewarrior(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty (expected format YYYYMMDDTHHMMSSZ, e.g., 20240115T093000Z)")
	}

	t, err := time.ParseInLocation(TimewarriorLayout, input, time.UTC)
	if err == nil {
		return t, nil
	}

	switch {
	case compactDateOnlyRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete timestamp '%s': missing time of day (expected %sT000000Z)", input, input)
	case missingZoneRe.MatchString(input):
		return time.Time{}, fmt.Errorf("incomplete timestamp '%s': missing Z marker (expected %sZ)", input, input)
	default:
		return time.Time{}, fmt.Errorf("invalid timestamp '%s' (expected format YYYYMMDDTHHMMSSZ, e.g., 20240115T093000Z)", input)
	}
}

// FormatTimewarrior renders t in the Timewarrior protocol layout.
func FormatTimewarrior(t time.Time) string {
	return t.UTC().Format(TimewarriorLayout)
}

// FormatCTT renders t for ctt. A nil location keeps the clock reading as
// given; otherwise t is converted into loc first.
func FormatCTT(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(CTTLayout)
}
