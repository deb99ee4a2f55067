package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/storage/sqlite"
)

const (
	// BackendFile selects JSON file storage.
	BackendFile = "file"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"

	snapshotsDBFileName = "hrdesk.db"
)

var (
	_ Storage = (*sqlite.SQLiteStorage)(nil)
	_ Storage = (*FileStorage)(nil)
)

// NewFromConfig creates a storage backend based on configuration.
func NewFromConfig() (Storage, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite), config.Get("state_dir", ""))
}

// NewForBackend creates a storage backend for the provided backend name.
// SQLite failures fall back to file storage with a warning.
func NewForBackend(backend, stateDir string) (Storage, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("storage: state directory not configured")
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile:
		return NewFileStorage(stateDir)
	case "", BackendSQLite:
		dbPath := filepath.Join(stateDir, snapshotsDBFileName)
		sqliteStorage, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStorage(stateDir)
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return NewFileStorage(stateDir)
	}
}
