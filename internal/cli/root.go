// Package cli contains the command constructors.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/greetings/internal/config"
	"github.com/Makepad-fr/greetings/internal/expand"
	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/observability"
	"github.com/Makepad-fr/greetings/internal/store"
	"github.com/Makepad-fr/greetings/internal/store/jsonstore"
	"github.com/Makepad-fr/greetings/internal/store/sqlitestore"
	"github.com/Makepad-fr/greetings/internal/ui"
)

// env is shared by every subcommand once the root pre-run has loaded it.
type env struct {
	configPath string
	theme      string
	cfg        *config.Config
	logger     *slog.Logger
}

// RootCommand instantiates the root command, with all sub-commands bound.
// Without a subcommand it opens the interactive screen.
func RootCommand() *cobra.Command {
	e := &env{configPath: config.DefaultPath()}
	cmd := &cobra.Command{
		Use:           "greetings [command] [flags]",
		Short:         "Expandable greetings in your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(e.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration file: %w", err)
			}
			if e.theme != "" {
				cfg.Theme = e.theme
			}
			e.cfg = cfg
			ui.SetTheme(cfg.Theme)
			e.logger = observability.New(cmd.ErrOrStderr(), cfg.Log.Level)
			slog.SetDefault(e.logger)
			e.logger.DebugContext(cmd.Context(), "configuration loaded", slog.String("path", e.configPath))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e)
		},
	}

	cmd.PersistentFlags().StringVarP(&e.configPath, "config", "c", e.configPath, "path to the configuration file")
	cmd.PersistentFlags().StringVar(&e.theme, "theme", "", "override the theme (classic|neon|mono)")

	cmd.AddCommand(
		tuiCommand(e),
		lsCommand(e),
		toggleCommand(e),
		resetCommand(e),
		plantCommand(e),
		initConfigCommand(e),
	)
	return cmd
}

// Execute runs the root command and reports failures the way the rest of
// the output looks.
func Execute(ctx context.Context, stderr io.Writer) int {
	if err := RootCommand().ExecuteContext(ctx); err != nil {
		ui.Fail(stderr, err.Error())
		return 1
	}
	return 0
}

// openStore opens the configured state backend.
func (e *env) openStore(ctx context.Context) (store.Backend, error) {
	path := e.cfg.StatePath()
	switch e.cfg.State.Backend {
	case "sqlite":
		return sqlitestore.Open(ctx, e.logger, path)
	default:
		return jsonstore.New(path), nil
	}
}

// items returns the rows to show: the saved list if the user edited it,
// otherwise the configured names or numbered rows.
func (e *env) items(st *store.UIState) []model.Item {
	if st.CustomItems || len(st.Items) > 0 {
		return st.Items
	}
	return e.defaultItems()
}

func (e *env) defaultItems() []model.Item {
	if len(e.cfg.Names) > 0 {
		return model.NamedItems(e.cfg.Names)
	}
	return model.DefaultItems(e.cfg.Rows())
}

// loadState opens the backend and returns the saved state with a controller
// restored from it. The caller closes the backend.
func (e *env) loadState(ctx context.Context) (store.Backend, *store.UIState, *expand.Controller, []model.Item, error) {
	backend, err := e.openStore(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open state: %w", err)
	}
	st, err := backend.Load(ctx)
	if err != nil {
		_ = backend.Close()
		return nil, nil, nil, nil, fmt.Errorf("load state: %w", err)
	}
	items := e.items(st)
	ctrl := expand.Restored(st.Expanded)
	ctrl.Retain(model.IDs(items))
	return backend, st, ctrl, items, nil
}
