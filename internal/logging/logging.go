// Package logging provides the component loggers used across timewext.
// Logs always go to stderr so stdout stays clean for Timewarrior.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "TIMEWEXT_DEBUG"

var base = newBase(os.Stderr)

func newBase(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if DebugEnabled() {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// DebugEnabled returns true if debug mode is enabled via the environment.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// SetOutput redirects all loggers to w.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetDebug switches debug logging on. The environment variable can only
// enable debug output, never disable it.
func SetDebug(on bool) {
	if on || DebugEnabled() {
		base.SetLevel(logrus.DebugLevel)
		return
	}
	base.SetLevel(logrus.WarnLevel)
}

// IsDebug reports whether debug messages are currently emitted.
func IsDebug() bool {
	return base.IsLevelEnabled(logrus.DebugLevel)
}
