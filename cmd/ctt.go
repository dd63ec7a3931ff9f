package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/timewext/internal/cli"
	"github.com/xolan/timewext/internal/cli/handlers"
)

// cttCmd represents the ctt export command
var cttCmd = &cobra.Command{
	Use:   "ctt",
	Short: "Export a project's closed intervals to ctt",
	Long: `Export closed Timewarrior intervals of one project to ctt.

An interval belongs to the project when it is tagged with the project name or
with a dotted sub-project ("acme" matches "acme" and "acme.phase1", not
"acmecorp"). Open intervals are skipped. Each interval is recorded with
  ctt track --start YYYY-MM-DD-HHMM --end YYYY-MM-DD-HHMM <ctt project>
and its description piped to ctt's stdin. The first ctt failure aborts.

Timewarrior configuration:
  reports.ctt.project        Project tag to export (required)
  reports.ctt.ctt_project    ctt project name (default: same as project)

Examples:
  timew config reports.ctt.project acme
  timew ctt :week
  timewext ctt --dry-run < input.txt`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		command, _ := cmd.Flags().GetString("ctt-command")
		handlers.ExportCtt(cmd.Context(), cli.GetDeps(), handlers.ExportOptions{
			DryRun:     dryRun,
			CttCommand: command,
		})
	},
}

func init() {
	rootCmd.AddCommand(cttCmd)

	cttCmd.Flags().Bool("dry-run", false, "Print the ctt invocations instead of running them")
	cttCmd.Flags().String("ctt-command", "", "ctt executable to run (overrides ctt_command in the config file)")
}
