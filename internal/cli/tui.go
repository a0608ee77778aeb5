package cli

import (
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/greetings/internal/observability"
	"github.com/Makepad-fr/greetings/internal/tui"
)

func tuiCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive greetings list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e)
		},
	}
}

func runTUI(cmd *cobra.Command, e *env) error {
	ctx := cmd.Context()
	// The screen owns stdout; logs go to a file for the duration.
	logger, closer, err := observability.OpenFile(e.cfg.Log.File, e.cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	e.logger = logger

	backend, err := e.openStore(ctx)
	if err != nil {
		return err
	}
	defer backend.Close()

	opt := tui.Options{
		Items:     e.defaultItems(),
		Style:     e.cfg.Style,
		Collapsed: e.cfg.Padding.Collapsed,
		Expanded:  e.cfg.Padding.Expanded,
		More:      e.cfg.Labels.More,
		Less:      e.cfg.Labels.Less,
		Animate:   e.cfg.AnimationEnabled(),
		Logger:    logger,
	}
	logger.InfoContext(ctx, "starting", "rows", len(opt.Items), "style", opt.Style)
	return tui.Run(ctx, opt, backend)
}
