package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/timewext/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "timewext",
	Short: "Timewarrior extensions: compact current task and ctt export",
	Long: `timewext bundles Timewarrior extensions that read the extension protocol
(configuration header, empty line, JSON intervals) on stdin.

Usage:
  timewext current       Print the open interval as "<description> [m:ss]"
  timewext ctt           Export closed intervals of reports.ctt.project to ctt

Install by linking the binary into the Timewarrior extensions directory under
the name of the subcommand; it then runs that subcommand directly:
  ln -s $(which timewext) ~/.timewarrior/extensions/current
  ln -s $(which timewext) ~/.timewarrior/extensions/ctt
  timew current
  timew ctt`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Root().PersistentFlags().GetString("config")
		cli.LoadConfig(cli.GetDeps(), path)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the TOML config file (default: user config dir)")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timewext version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command. An interrupt cancels a running export.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return executeArgs(ctx, os.Args)
}

func executeArgs(ctx context.Context, argv []string) error {
	rootCmd.SetArgs(dispatchArgs(argv))
	return rootCmd.ExecuteContext(ctx)
}

// dispatchArgs turns argv into command arguments. When the executable is
// named after a subcommand (e.g. an extension symlink called "ctt" or
// "ctt.py"), that subcommand is selected.
func dispatchArgs(argv []string) []string {
	if len(argv) == 0 {
		return []string{}
	}
	name := filepath.Base(argv[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))

	rest := append([]string{}, argv[1:]...)
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return append([]string{name}, rest...)
		}
	}
	return rest
}
