package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/greetings/internal/store"
)

// JSON-backed UI state. Single file, human-readable, portable.
// Best effort: a corrupted file reads as a fresh start.

// Store keeps UIState in the file at Path.
type Store struct {
	Path string
}

func New(path string) *Store { return &Store{Path: path} }

func (s *Store) Load(_ context.Context) (*store.UIState, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store.Default(), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var st store.UIState
	if err := json.Unmarshal(b, &st); err != nil {
		return store.Default(), nil
	}
	st.Normalize()
	return &st, nil
}

func (s *Store) Save(_ context.Context, st *store.UIState) error {
	if st == nil {
		return nil
	}
	st.Normalize()
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
