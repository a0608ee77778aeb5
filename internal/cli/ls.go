package cli

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/greetings/internal/expand"
	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/ui"
)

// maxLabelWidth caps a label in cells, not bytes.
const maxLabelWidth = 60

type lsOptions struct {
	group    bool
	expanded bool
	limit    int
}

func lsCommand(e *env) *cobra.Command {
	var opt lsOptions
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List greetings with their saved expanded state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			backend, _, ctrl, items, err := e.loadState(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()
			fmt.Fprintln(cmd.OutOrStdout(), listPanel(items, ctrl, e.cfg.Labels.More, e.cfg.Labels.Less, opt))
			return nil
		},
	}
	cmd.Flags().BoolVar(&opt.group, "group", false, "group output by expanded/collapsed")
	cmd.Flags().BoolVar(&opt.expanded, "expanded", false, "only show expanded rows")
	cmd.Flags().IntVarP(&opt.limit, "limit", "n", 0, "show at most n rows (0 = all)")
	return cmd
}

func listPanel(items []model.Item, ctrl *expand.Controller, more, less string, opt lsOptions) string {
	t := ui.Current()
	n := ctrl.Len()
	header := fmt.Sprintf("%s  %s %d  %s %d",
		t.Title.Render("Greetings"),
		t.Accent.Render(t.IconLess), n,
		t.Muted.Render("Total"), len(items),
	)
	lines := []string{header, t.Muted.Render(ui.ProgressBar(n, len(items), 28)), ""}

	if opt.expanded {
		var only []model.Item
		for _, it := range items {
			if ctrl.IsExpanded(it.ID) {
				only = append(only, it)
			}
		}
		items = only
	}
	if opt.limit > 0 && len(items) > opt.limit {
		items = items[:opt.limit]
	}

	if opt.group {
		lines = append(lines, groupLines(items, ctrl, more, less)...)
	} else {
		lines = append(lines, flatLines(items, ctrl, more, less)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: flip a row with `greetings toggle <id>`"))
	return ui.Panel(lines)
}

func flatLines(items []model.Item, ctrl *expand.Controller, more, less string) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no greetings")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		icon := expand.Pick(ctrl.IsExpanded(it.ID), t.IconMore, t.IconLess)
		out = append(out, fmt.Sprintf("%s %s Hello, %s  %s",
			t.Muted.Render(fmt.Sprintf("%4s", it.ID)),
			t.Accent.Render(icon),
			ansi.Truncate(it.Label, maxLabelWidth, "..."),
			t.Muted.Render("("+ctrl.Label(it.ID, more, less)+")"),
		))
	}
	return out
}

func groupLines(items []model.Item, ctrl *expand.Controller, more, less string) []string {
	t := ui.Current()
	var open, closed []model.Item
	for _, it := range items {
		if ctrl.IsExpanded(it.ID) {
			open = append(open, it)
		} else {
			closed = append(closed, it)
		}
	}
	section := func(title string, rows []model.Item) []string {
		out := []string{t.Accent.Render(title)}
		if len(rows) == 0 {
			return append(out, t.Muted.Render("(none)"))
		}
		return append(out, flatLines(rows, ctrl, more, less)...)
	}
	lines := section("Expanded", open)
	lines = append(lines, "")
	return append(lines, section("Collapsed", closed)...)
}
