package app

import (
	"fmt"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
)

// KindInfo describes one collection and its stored snapshot.
type KindInfo struct {
	Kind      domain.Kind
	Noun      string
	Count     int
	FetchedAt time.Time
}

// Synced reports whether the kind has been fetched at least once.
func (k KindInfo) Synced() bool {
	return !k.FetchedAt.IsZero()
}

// Kinds lists every registered kind with its snapshot metadata.
func (s *Service) Kinds() ([]KindInfo, error) {
	stored, err := s.store.ListKinds()
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	byKind := make(map[domain.Kind]domain.SnapshotInfo, len(stored))
	for _, info := range stored {
		byKind[info.Kind] = info
	}

	kinds := s.registry.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, kind := range kinds {
		view, err := s.registry.Get(kind)
		if err != nil {
			return nil, err
		}
		info := byKind[kind]
		out = append(out, KindInfo{
			Kind:      kind,
			Noun:      view.Noun(),
			Count:     info.Count,
			FetchedAt: info.FetchedAt,
		})
	}
	return out, nil
}
