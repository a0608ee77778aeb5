package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/greetings/internal/config"
	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/ui"
)

func toggleCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip the saved expanded state of one or more rows",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, st, ctrl, items, err := e.loadState(ctx)
			if err != nil {
				return err
			}
			defer backend.Close()

			var unknown []string
			for _, id := range args {
				if model.Find(items, id) < 0 {
					unknown = append(unknown, id)
				}
			}
			if len(unknown) > 0 {
				return fmt.Errorf("unknown id(s): %s (run `greetings ls` to see valid ids)", strings.Join(unknown, ", "))
			}

			for _, id := range args {
				v := ctrl.Toggle(id)
				e.logger.DebugContext(ctx, "row toggled", slog.String("id", id), slog.Bool("expanded", v))
				ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s: %s", id, ctrl.Label(id, "collapsed", "expanded")))
			}
			st.Expanded = ctrl.Snapshot()
			if err := backend.Save(ctx, st); err != nil {
				return fmt.Errorf("save state: %w", err)
			}
			return nil
		},
	}
}

func resetCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget saved state (onboarding, rows and expanded flags)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()
			if err := backend.Clear(cmd.Context()); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "state cleared")
			return nil
		},
	}
}

func initConfigCommand(e *env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the current configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force && fileExists(e.configPath) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", e.configPath)
			}
			if err := config.Write(e.configPath, e.cfg); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+e.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
