// Package store persists the small amount of UI state that must survive a
// restart: whether onboarding was dismissed, the row list, the cursor and the
// expanded flags.
package store

import (
	"context"

	"github.com/Makepad-fr/greetings/internal/expand"
	"github.com/Makepad-fr/greetings/internal/model"
)

// CurrentVersion is written into every saved UIState.
const CurrentVersion = 1

// UIState is the saved screen state. CustomItems marks Items as the user's
// edited list, which may be empty; when false the configured rows are shown.
type UIState struct {
	Version     int          `json:"version"`
	Onboarded   bool         `json:"onboarded"`
	Style       string       `json:"style,omitempty"`
	Cursor      int          `json:"cursor"`
	NextSeq     int          `json:"nextSeq,omitempty"`
	CustomItems bool         `json:"customItems,omitempty"`
	Items       []model.Item `json:"items,omitempty"`
	Expanded    expand.State `json:"expanded"`
}

// Default returns the state of a first launch.
func Default() *UIState {
	return &UIState{Version: CurrentVersion}
}

// Normalize fills in fields older or partial saves may lack.
func (s *UIState) Normalize() {
	if s.Version == 0 {
		s.Version = CurrentVersion
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if len(s.Items) > 0 {
		s.CustomItems = true
	}
}

// Backend loads and saves a UIState. Load returns Default when nothing has
// been saved yet.
type Backend interface {
	Load(ctx context.Context) (*UIState, error)
	Save(ctx context.Context, st *UIState) error
	Clear(ctx context.Context) error
	Close() error
}
