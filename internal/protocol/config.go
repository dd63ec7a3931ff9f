package protocol

import "strings"

// Config holds the header settings Timewarrior passes to an extension,
// keyed by their dotted names (e.g. "reports.ctt.project").
type Config map[string]string

// Lookup returns the value for key and whether it was present.
func (c Config) Lookup(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Get returns the value for key, or "" when absent.
func (c Config) Get(key string) string {
	return c[key]
}

// GetOrDefault returns the value for key, or def when absent or blank.
func (c Config) GetOrDefault(key, def string) string {
	if v := c[key]; v != "" {
		return v
	}
	return def
}

// Bool interprets a Timewarrior boolean setting (on, yes, y, true, 1).
func (c Config) Bool(key string) bool {
	switch strings.ToLower(c[key]) {
	case "on", "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}
