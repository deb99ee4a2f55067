package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
)

const (
	snapshotsDirName = "snapshots"
	lockDirName      = ".lock"
	snapshotExt      = ".json"
)

// snapshotFile is the on-disk layout of one collection.
type snapshotFile struct {
	Kind      domain.Kind     `json:"kind"`
	FetchedAt time.Time       `json:"fetched_at"`
	Records   []domain.Record `json:"records"`
}

// FileStorage stores one JSON file per collection under the state directory.
type FileStorage struct {
	dir  string
	lock *dirLock
}

// NewFileStorage creates a file storage rooted at stateDir.
func NewFileStorage(stateDir string) (*FileStorage, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("file storage: state directory not configured")
	}
	dir := filepath.Join(stateDir, snapshotsDirName)
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create snapshot directory: %w", err)
	}
	return &FileStorage{dir: dir, lock: newDirLock(filepath.Join(dir, lockDirName))}, nil
}

func (fs *FileStorage) path(kind domain.Kind) string {
	return filepath.Join(fs.dir, kind.String()+snapshotExt)
}

func (fs *FileStorage) withLock(fn func() error) error {
	return fs.lock.with(fn)
}

// SaveSnapshot replaces the stored snapshot of kind.
func (fs *FileStorage) SaveSnapshot(kind domain.Kind, records []domain.Record, fetchedAt time.Time) error {
	if !kind.IsValid() {
		return fmt.Errorf("file storage: %w: %s", domain.ErrUnknownKind, kind)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return fs.withLock(func() error {
		return fs.write(snapshotFile{Kind: kind, FetchedAt: fetchedAt.UTC(), Records: records})
	})
}

// LoadSnapshot returns the stored snapshot of kind. A kind that was never
// saved yields an empty snapshot.
func (fs *FileStorage) LoadSnapshot(kind domain.Kind) (domain.Snapshot, error) {
	if !kind.IsValid() {
		return domain.Snapshot{}, fmt.Errorf("file storage: %w: %s", domain.ErrUnknownKind, kind)
	}
	var file snapshotFile
	err := fs.withLock(func() error {
		var err error
		file, err = fs.read(kind)
		return err
	})
	if err != nil {
		return domain.Snapshot{}, err
	}

	snap := domain.Snapshot{Kind: kind, FetchedAt: file.FetchedAt, Records: make([]json.RawMessage, 0, len(file.Records))}
	for _, rec := range file.Records {
		snap.Records = append(snap.Records, rec.Body)
	}
	return snap, nil
}

// PatchRecord merges patch into the stored record with the given id.
func (fs *FileStorage) PatchRecord(kind domain.Kind, id string, patch map[string]any) error {
	if !kind.IsValid() {
		return fmt.Errorf("file storage: %w: %s", domain.ErrUnknownKind, kind)
	}
	return fs.withLock(func() error {
		file, err := fs.read(kind)
		if err != nil {
			return err
		}
		for i, rec := range file.Records {
			if rec.ID != id {
				continue
			}
			patched, err := domain.ApplyPatch(rec.Body, patch)
			if err != nil {
				return fmt.Errorf("file storage: patch %s %s: %w", kind, id, err)
			}
			file.Records[i].Body = patched
			return fs.write(file)
		}
		return fmt.Errorf("file storage: %s %s: %w", kind, id, domain.ErrRecordNotFound)
	})
}

// ListKinds returns metadata for every stored snapshot.
func (fs *FileStorage) ListKinds() ([]domain.SnapshotInfo, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("file storage: list snapshots: %w", err)
	}

	var infos []domain.SnapshotInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		kind := domain.Kind(strings.TrimSuffix(name, snapshotExt))
		if !kind.IsValid() {
			continue
		}
		file, err := fs.read(kind)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domain.SnapshotInfo{Kind: kind, Count: len(file.Records), FetchedAt: file.FetchedAt})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Kind < infos[j].Kind })
	return infos, nil
}

// Close is a no-op for file storage.
func (fs *FileStorage) Close() error {
	return nil
}

func (fs *FileStorage) read(kind domain.Kind) (snapshotFile, error) {
	data, err := os.ReadFile(fs.path(kind))
	if errors.Is(err, os.ErrNotExist) {
		return snapshotFile{Kind: kind}, nil
	}
	if err != nil {
		return snapshotFile{}, fmt.Errorf("file storage: read %s: %w", kind, err)
	}
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return snapshotFile{}, fmt.Errorf("file storage: decode %s: %w", kind, err)
	}
	return file, nil
}

// write replaces the snapshot file atomically via a temp file and rename.
func (fs *FileStorage) write(file snapshotFile) error {
	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("file storage: encode %s: %w", file.Kind, err)
	}
	tmp, err := os.CreateTemp(fs.dir, file.Kind.String()+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file storage: write %s: %w", file.Kind, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file storage: close %s: %w", file.Kind, err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		return fmt.Errorf("file storage: chmod %s: %w", file.Kind, err)
	}
	if err := os.Rename(tmpName, fs.path(file.Kind)); err != nil {
		return fmt.Errorf("file storage: replace %s: %w", file.Kind, err)
	}
	return nil
}
