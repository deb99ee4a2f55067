// Package storage persists the last fetched snapshot of each HR collection.
package storage

import (
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// Storage defines the interface for snapshot storage operations.
type Storage interface {
	// SaveSnapshot replaces the stored collection of kind.
	SaveSnapshot(kind domain.Kind, records []domain.Record, fetchedAt time.Time) error
	// LoadSnapshot returns the stored collection. A kind that was never
	// saved yields an empty snapshot, not an error.
	LoadSnapshot(kind domain.Kind) (domain.Snapshot, error)
	// PatchRecord merges patch into the top-level fields of one record.
	PatchRecord(kind domain.Kind, id string, patch map[string]any) error
	// ListKinds returns metadata for every stored snapshot.
	ListKinds() ([]domain.SnapshotInfo, error)
	Close() error
}
