// Package sqlite provides a SQLite-backed snapshot storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	kind     TEXT    NOT NULL,
	position INTEGER NOT NULL,
	id       TEXT    NOT NULL,
	body     TEXT    NOT NULL,
	PRIMARY KEY (kind, position)
);
CREATE INDEX IF NOT EXISTS idx_snapshots_kind_id ON snapshots (kind, id);
CREATE TABLE IF NOT EXISTS snapshot_meta (
	kind       TEXT    PRIMARY KEY,
	fetched_at TEXT    NOT NULL,
	count      INTEGER NOT NULL
);
`

// SQLiteStorage stores collection snapshots in a SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a SQLite-backed storage at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}
	// SQLite allows a single writer; one connection queues concurrent
	// snapshot saves in the pool instead of failing them with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	storage := &SQLiteStorage{db: db}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// dsn applies the pragmas to every connection the pool opens. The busy
// timeout covers other processes writing the same file.
func dsn(dbPath string) string {
	return "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// SaveSnapshot replaces the stored snapshot of kind.
func (s *SQLiteStorage) SaveSnapshot(kind domain.Kind, records []domain.Record, fetchedAt time.Time) error {
	if !kind.IsValid() {
		return fmt.Errorf("sqlite storage: %w: %s", domain.ErrUnknownKind, kind)
	}

	ctx := context.Background()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite storage: begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE kind = ?`, kind.String()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite storage: clear %s: %w", kind, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshots (kind, position, id, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite storage: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, kind.String(), i, rec.ID, string(rec.Body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("sqlite storage: insert %s record %s: %w", kind, rec.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (kind, fetched_at, count) VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET fetched_at = excluded.fetched_at, count = excluded.count`,
		kind.String(), fetchedAt.UTC().Format(time.RFC3339Nano), len(records))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite storage: update %s metadata: %w", kind, err)
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("sqlite storage: commit transaction: %w", err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot of kind. A kind that was never
// saved yields an empty snapshot.
func (s *SQLiteStorage) LoadSnapshot(kind domain.Kind) (domain.Snapshot, error) {
	if !kind.IsValid() {
		return domain.Snapshot{}, fmt.Errorf("sqlite storage: %w: %s", domain.ErrUnknownKind, kind)
	}

	snap := domain.Snapshot{Kind: kind, Records: []json.RawMessage{}}

	var fetchedAt string
	err := s.db.QueryRow(`SELECT fetched_at FROM snapshot_meta WHERE kind = ?`, kind.String()).Scan(&fetchedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return snap, nil
	case err != nil:
		return domain.Snapshot{}, fmt.Errorf("sqlite storage: load %s metadata: %w", kind, err)
	}
	if snap.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt); err != nil {
		return domain.Snapshot{}, fmt.Errorf("sqlite storage: parse %s fetched_at: %w", kind, err)
	}

	rows, err := s.db.Query(`SELECT body FROM snapshots WHERE kind = ? ORDER BY position`, kind.String())
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("sqlite storage: load %s: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return domain.Snapshot{}, fmt.Errorf("sqlite storage: scan %s: %w", kind, err)
		}
		snap.Records = append(snap.Records, json.RawMessage(body))
	}
	if err := rows.Err(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("sqlite storage: iterate %s: %w", kind, err)
	}
	return snap, nil
}

// PatchRecord merges patch into the stored record with the given id.
func (s *SQLiteStorage) PatchRecord(kind domain.Kind, id string, patch map[string]any) error {
	if !kind.IsValid() {
		return fmt.Errorf("sqlite storage: %w: %s", domain.ErrUnknownKind, kind)
	}

	var position int
	var body string
	err := s.db.QueryRow(`SELECT position, body FROM snapshots WHERE kind = ? AND id = ? LIMIT 1`, kind.String(), id).
		Scan(&position, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("sqlite storage: %s %s: %w", kind, id, domain.ErrRecordNotFound)
	}
	if err != nil {
		return fmt.Errorf("sqlite storage: find %s %s: %w", kind, id, err)
	}

	patched, err := domain.ApplyPatch(json.RawMessage(body), patch)
	if err != nil {
		return fmt.Errorf("sqlite storage: patch %s %s: %w", kind, id, err)
	}

	if _, err := s.db.Exec(`UPDATE snapshots SET body = ? WHERE kind = ? AND position = ?`, string(patched), kind.String(), position); err != nil {
		return fmt.Errorf("sqlite storage: update %s %s: %w", kind, id, err)
	}
	return nil
}

// ListKinds returns metadata for every stored snapshot.
func (s *SQLiteStorage) ListKinds() ([]domain.SnapshotInfo, error) {
	rows, err := s.db.Query(`SELECT kind, fetched_at, count FROM snapshot_meta ORDER BY kind`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list kinds: %w", err)
	}
	defer rows.Close()

	var infos []domain.SnapshotInfo
	for rows.Next() {
		var kind, fetchedAt string
		var info domain.SnapshotInfo
		if err := rows.Scan(&kind, &fetchedAt, &info.Count); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan kind: %w", err)
		}
		info.Kind = domain.Kind(kind)
		if info.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt); err != nil {
			return nil, fmt.Errorf("sqlite storage: parse %s fetched_at: %w", kind, err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}
