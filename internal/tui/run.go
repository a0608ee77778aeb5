package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/greetings/internal/store"
)

// Run starts the interactive screen and persists its state on exit when
// anything changed.
func Run(ctx context.Context, opt Options, backend store.Backend) error {
	st, err := backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	opt.State = st

	m := New(opt)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := finalModel.(*Model)
	if !ok {
		return nil
	}
	return saveIfChanged(ctx, fm, backend)
}

// saveIfChanged writes m's state unless the session left it untouched.
func saveIfChanged(ctx context.Context, m *Model, backend store.Backend) error {
	if !m.Changed() {
		return nil
	}
	if err := backend.Save(ctx, m.State()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	m.log.Info("state saved", "expanded", m.Controller().Len())
	return nil
}
