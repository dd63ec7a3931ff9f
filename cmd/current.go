package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timewext/internal/cli"
	"github.com/xolan/timewext/internal/cli/handlers"
)

// currentCmd represents the current command
var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the currently tracked interval on one line",
	Long: `Print the open Timewarrior interval as "<description> [<minutes>:<seconds>]"
without a trailing newline, for use in status bars and prompts.

The description is built from tags containing spaces; when there are none,
all tags are joined with "; ". Nothing is printed when no interval is open.

Examples:
  timew current
  timew export | timewext current   (header required, see 'timewext --help')`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowCurrent(cli.GetDeps())
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}
