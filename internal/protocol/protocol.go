// Package protocol reads the Timewarrior extension input: a block of
// "key: value" configuration lines, an empty line, then a JSON array of
// intervals.
package protocol

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/timewext/internal/entry"
	apperrors "github.com/xolan/timewext/internal/errors"
	"github.com/xolan/timewext/internal/timeutil"
)

// Input is the decoded extension input.
type Input struct {
	Config  Config
	Entries []entry.Entry
}

// rawEntry mirrors one interval object of the JSON body.
type rawEntry struct {
	ID         int      `json:"id"`
	Start      string   `json:"start"`
	End        *string  `json:"end"`
	Tags       []string `json:"tags"`
	Annotation string   `json:"annotation"`
}

// Parse reads r to the end and decodes the header and body.
// All failures are returned as parse errors.
func Parse(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewParseError("failed to read input", err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	idx := strings.Index(text, "\n\n")
	if idx == -1 {
		return nil, apperrors.NewParseError("missing empty line between header and body", nil)
	}

	cfg, err := ParseHeader(text[:idx])
	if err != nil {
		return nil, err
	}

	entries, err := ParseBody([]byte(text[idx+2:]))
	if err != nil {
		return nil, err
	}

	return &Input{Config: cfg, Entries: entries}, nil
}

// ParseHeader parses "key: value" lines. Empty lines are ignored; a line
// without a colon is an error.
func ParseHeader(header string) (Config, error) {
	cfg := make(Config)
	for i, line := range strings.Split(header, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, apperrors.NewParseError(
				fmt.Sprintf("header line %d has no ':' separator: %q", i+1, line), nil)
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, nil
}

// ParseBody decodes the JSON array of intervals, validating timestamps.
func ParseBody(body []byte) ([]entry.Entry, error) {
	var raws []rawEntry
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, apperrors.NewParseError("invalid JSON body", err)
	}

	entries := make([]entry.Entry, 0, len(raws))
	for i, raw := range raws {
		e, err := raw.toEntry()
		if err != nil {
			return nil, apperrors.NewParseError(fmt.Sprintf("interval %d", i+1), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r rawEntry) toEntry() (entry.Entry, error) {
	start, err := timeutil.ParseTimewarrior(r.Start)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("start: %w", err)
	}

	e := entry.Entry{
		ID:         r.ID,
		Start:      start,
		Tags:       r.Tags,
		Annotation: r.Annotation,
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}

	if r.End != nil {
		end, err := timeutil.ParseTimewarrior(*r.End)
		if err != nil {
			return entry.Entry{}, fmt.Errorf("end: %w", err)
		}
		e.End = &end
	}
	return e, nil
}
