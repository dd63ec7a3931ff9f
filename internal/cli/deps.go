package cli

import (
	"io"
	"os"
	"time"

	"github.com/xolan/timewext/internal/config"
	"github.com/xolan/timewext/internal/ctt"
	"github.com/xolan/timewext/internal/logging"
	"github.com/xolan/timewext/internal/osutil"
)

// TrackerFactory builds the ctt tracker for an export run
type TrackerFactory func(d *Deps, command string, dryRun bool) ctt.Tracker

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Now    func() time.Time

	// NewTracker creates the collaborator that records exported intervals
	NewTracker TrackerFactory

	Config     config.Config
	ConfigPath string
	// ConfigErr is set when the config file existed but could not be used
	ConfigErr error
}

// DefaultTracker runs ctt for real, or prints the invocations on a dry run.
// The command is resolved through PATH when possible; an unresolvable name
// is kept as is so the failure surfaces on the first ctt call.
func DefaultTracker(d *Deps, command string, dryRun bool) ctt.Tracker {
	if resolved, err := osutil.Provider.LookPath(command); err == nil {
		command = resolved
	} else {
		logging.NewLogger("cli").WithError(err).WithField("command", command).Debug("ctt not found on PATH")
	}
	if dryRun {
		return &ctt.DryRun{Command: command, Out: d.Stdout}
	}
	return ctt.NewExec(command, d.Stdout, d.Stderr)
}

// DefaultDeps creates a new Deps with default values.
// The config file is not read until LoadConfig is called.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		Now:        time.Now,
		NewTracker: DefaultTracker,
		Config:     config.DefaultConfig(),
	}
}

// LoadConfig loads the config file at path, or the default location when
// path is empty. Failures keep the defaults and are remembered in ConfigErr.
func LoadConfig(d *Deps, path string) {
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			d.ConfigErr = err
			return
		}
		path = p
	}
	d.ConfigPath = path

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		d.ConfigErr = err
		d.Config = config.DefaultConfig()
		return
	}
	d.ConfigErr = nil
	d.Config = cfg
}

// Global deps instance for CLI
var deps = DefaultDeps()

// SetDeps sets the global deps (for testing)
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets to default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the current deps
func GetDeps() *Deps {
	return deps
}
