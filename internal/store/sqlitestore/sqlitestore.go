// Package sqlitestore keeps UI state in a SQLite database. It suits users who
// already sync a state directory and want one file with a schema instead of
// loose JSON.
package sqlitestore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // sqlite sql.DB driver initialization

	"github.com/Makepad-fr/greetings/internal/expand"
	"github.com/Makepad-fr/greetings/internal/model"
	"github.com/Makepad-fr/greetings/internal/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store is a store.Backend backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open connects to dbPath, creating the file and parent directory when
// missing, and migrates it to the current schema.
func Open(ctx context.Context, logger *slog.Logger, dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create db parent directory: %w", err)
		}
	}

	dsn := dbPath
	if strings.ContainsRune(dsn, '?') {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create DB handler: %w", err)
	}
	if err = handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	handle.SetMaxOpenConns(1)

	logger = logger.With(slog.String("db", dbPath))
	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, handle, "migrations"); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return &Store{db: handle}, nil
}

func (s *Store) Load(ctx context.Context) (*store.UIState, error) {
	st := store.Default()
	var onboarded, custom int
	err := s.db.QueryRowContext(ctx,
		`SELECT version, onboarded, style, cursor, next_seq, custom_items FROM ui_state WHERE id = 1`,
	).Scan(&st.Version, &onboarded, &st.Style, &st.Cursor, &st.NextSeq, &custom)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ui state: %w", err)
	}
	st.Onboarded = onboarded != 0
	st.CustomItems = custom != 0

	items, err := s.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	st.Items = items

	ids, err := s.loadExpanded(ctx)
	if err != nil {
		return nil, err
	}
	st.Expanded = expand.State{Expanded: ids}
	st.Normalize()
	return st, nil
}

func (s *Store) loadItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, label FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	defer rows.Close()
	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Label); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *Store) loadExpanded(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM expanded ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read expanded ids: %w", err)
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expanded id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Save replaces the stored state in one transaction.
func (s *Store) Save(ctx context.Context, st *store.UIState) (err error) {
	if st == nil {
		return nil
	}
	st.Normalize()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO ui_state (id, version, onboarded, style, cursor, next_seq, custom_items)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   version = excluded.version, onboarded = excluded.onboarded,
		   style = excluded.style, cursor = excluded.cursor, next_seq = excluded.next_seq,
		   custom_items = excluded.custom_items`,
		st.Version, boolInt(st.Onboarded), st.Style, st.Cursor, st.NextSeq, boolInt(st.CustomItems),
	); err != nil {
		return fmt.Errorf("failed to write ui state: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	for i, it := range st.Items {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO items (position, id, label) VALUES (?, ?, ?)`, i, it.ID, it.Label,
		); err != nil {
			return fmt.Errorf("failed to write item %q: %w", it.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM expanded`); err != nil {
		return fmt.Errorf("failed to clear expanded ids: %w", err)
	}
	for _, id := range st.Expanded.Expanded {
		if _, err = tx.ExecContext(ctx, `INSERT INTO expanded (id) VALUES (?)`, id); err != nil {
			return fmt.Errorf("failed to write expanded id %q: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	for _, table := range []string{"expanded", "items", "ui_state"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Store) Close() error {
	return s.db.Close()
}
