package main

import (
	"os"
	_ "time/tzdata"

	"github.com/xolan/timewext/cmd"
	apperrors "github.com/xolan/timewext/internal/errors"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var exitFunc = os.Exit

func main() {
	cmd.SetVersionInfo(version, commit, date)
	exitFunc(run())
}

func run() int {
	if err := cmd.Execute(); err != nil {
		return apperrors.ExitCode(err)
	}
	return 0
}
