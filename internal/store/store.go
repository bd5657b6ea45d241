// Package store persists the game snapshot as a single JSON record under one
// fixed key in a local SQLite database. The in-memory state stays
// authoritative: load falls back to the initial template on any failure, and
// async saves only ever log their errors.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"focusarena/internal/game"
)

// SnapshotKey is the fixed slot the snapshot lives under.
const SnapshotKey = "arena_v1"

// DefaultDBPath returns the default Focus Arena DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".focusarena.db"), nil
}

// Store owns the SQLite handle for the snapshot slot.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (and creates if missing) the database at path and ensures the
// snapshot table exists.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the snapshot and merges it onto a fresh initial template, so
// fields added after a snapshot was written keep their defaults. Storage or
// parse failures are logged and yield the initial state, never an error the
// caller has to surface.
func (s *Store) Load(ctx context.Context) *game.GameState {
	st := game.NewInitialState()

	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, SnapshotKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return st
	}
	if err != nil {
		s.log.Warn("snapshot read failed, starting fresh", zap.Error(err))
		return st
	}

	if err := json.Unmarshal([]byte(raw), st); err != nil {
		s.log.Warn("snapshot parse failed, starting fresh", zap.Error(err))
		return game.NewInitialState()
	}
	return st
}

// Save upserts the snapshot.
func (s *Store) Save(ctx context.Context, st *game.GameState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, SnapshotKey, string(data))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// SaveAsync mirrors the state to disk without blocking the caller. Failure is
// logged; the in-memory state remains authoritative either way.
func (s *Store) SaveAsync(st *game.GameState) {
	snap := st.Clone()
	go func() {
		if err := s.Save(context.Background(), snap); err != nil {
			s.log.Warn("async save failed", zap.Error(err))
		}
	}()
}

// Reset deletes the persisted snapshot. Irreversible.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, SnapshotKey); err != nil {
		return fmt.Errorf("reset snapshot: %w", err)
	}
	return nil
}
