package handlers

import (
	"fmt"

	"github.com/xolan/timewext/internal/cli"
	"github.com/xolan/timewext/internal/logging"
	"github.com/xolan/timewext/internal/protocol"
	"github.com/xolan/timewext/internal/service"
)

// ShowCurrent prints the open interval as "<description> [<m>:<ss>]"
// without a trailing newline, or nothing when no interval is open.
func ShowCurrent(deps *cli.Deps) {
	input, err := protocol.Parse(deps.Stdin)
	if err != nil {
		cli.Fail(deps, err)
		return
	}
	logging.SetDebug(input.Config.Bool("debug"))
	cli.WarnConfig(deps)

	status, ok := service.NewCurrentService().Current(input.Entries, deps.Now())
	if !ok {
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatCurrentLine(status))
}
