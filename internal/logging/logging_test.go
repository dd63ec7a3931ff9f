package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnv, "1")
	assert.True(t, DebugEnabled())
}

func TestNewLogger_DebugToggle(t *testing.T) {
	t.Setenv(DebugEnv, "")

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetDebug(false)

	log := NewLogger("protocol")

	SetDebug(false)
	assert.False(t, IsDebug())
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	assert.True(t, IsDebug())
	log.WithField("entries", 3).Debug("parsed input")

	out := buf.String()
	assert.Contains(t, out, "parsed input")
	assert.Contains(t, out, "component=protocol")
	assert.Contains(t, out, "entries=3")
}

func TestSetDebug_EnvWins(t *testing.T) {
	t.Setenv(DebugEnv, "yes")
	defer func() {
		t.Setenv(DebugEnv, "")
		SetDebug(false)
	}()

	SetDebug(false)
	assert.True(t, IsDebug(), "environment keeps debug on")
}

func TestWarningsAlwaysShown(t *testing.T) {
	t.Setenv(DebugEnv, "")

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetDebug(false)

	NewLogger("config").Warn("config ignored")
	assert.Contains(t, buf.String(), "config ignored")
}
