package handlers

import (
	"context"
	"fmt"

	"github.com/xolan/timewext/internal/cli"
	"github.com/xolan/timewext/internal/logging"
	"github.com/xolan/timewext/internal/protocol"
	"github.com/xolan/timewext/internal/service"
	"github.com/xolan/timewext/internal/ui"
)

// ExportOptions holds the flags of the ctt command
type ExportOptions struct {
	DryRun     bool
	CttCommand string // overrides ctt_command from the config file
}

// ExportCtt records the closed intervals of reports.ctt.project with ctt and
// prints a progress transcript. The first ctt failure aborts the export.
func ExportCtt(ctx context.Context, deps *cli.Deps, opts ExportOptions) {
	input, err := protocol.Parse(deps.Stdin)
	if err != nil {
		cli.Fail(deps, err)
		return
	}
	logging.SetDebug(input.Config.Bool("debug"))
	cli.WarnConfig(deps)

	cfg := deps.Config
	if opts.CttCommand != "" {
		cfg.CttCommand = opts.CttCommand
	}

	tracker := deps.NewTracker(deps, cfg.CttCommand, opts.DryRun)
	svc := service.NewServices(cfg, tracker).Export

	plan, err := svc.Plan(input.Config, input.Entries)
	if err != nil {
		cli.Fail(deps, err)
		return
	}

	styles := ui.NewStyles(deps.Stdout, cfg.Color)
	out := deps.Stdout

	_, _ = fmt.Fprintf(out, "%s %s\n",
		styles.Heading.Render("Exporting for timewarrior project:"), styles.Project.Render(plan.Project))
	_, _ = fmt.Fprintf(out, "%s %s\n",
		styles.Heading.Render("Importing under ctt project"), styles.Project.Render(plan.CttProject))
	_, _ = fmt.Fprintln(out, styles.Hint.Render("(set timewarrior config "+service.KeyCttProject+" to change)"))
	if opts.DryRun {
		_, _ = fmt.Fprintln(out, styles.Warning.Render("(dry run: ctt will not be called)"))
	}
	_, _ = fmt.Fprintln(out)

	exported, err := svc.Run(ctx, plan, func(item service.ExportItem) {
		_, _ = fmt.Fprintf(out, "%s%s\n", styles.Bullet.Render(" - "), styles.Item.Render(item.Record.Description))
	})
	if err != nil {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, styles.Error.Render(fmt.Sprintf("Import aborted after %d of %d %s.",
			exported, len(plan.Items), cli.Pluralize("interval", len(plan.Items)))))
		cli.Fail(deps, err)
		return
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, styles.Success.Render("Import completed."))
}
