package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// backupName encodes the export moment into the file name, e.g.
// FOCUS-ARENA-2026-08-28-14h05.json.
func backupName(now time.Time) string {
	return fmt.Sprintf("FOCUS-ARENA-%s-%dh%02d.json", now.Format("2006-01-02"), now.Hour(), now.Minute())
}

// Export writes the raw persisted snapshot to a timestamped file under dir and
// returns the full path. It is a one-way export; nothing reads it back.
// Exporting with no snapshot saved yet is an error.
func (s *Store) Export(ctx context.Context, dir string, now time.Time) (string, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshots WHERE key = ?`, SnapshotKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("nothing to export: no snapshot saved yet")
	}
	if err != nil {
		return "", fmt.Errorf("read snapshot: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(dir, backupName(now))
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
