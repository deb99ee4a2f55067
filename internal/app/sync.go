package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cristianoliveira/hrdesk/internal/dedup"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/logging"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// maxConcurrentFetches bounds parallel requests during a multi-kind sync.
const maxConcurrentFetches = 4

// SyncResult reports what happened to one kind during Sync.
type SyncResult struct {
	Kind      domain.Kind
	Count     int
	FetchedAt time.Time
	// Stale is set when a newer sync of the same kind started before this
	// one finished; its response was discarded.
	Stale bool
	Err   error
}

// Sync fetches every given kind (all kinds when none are given) and replaces
// its snapshot. A failed fetch keeps the previous snapshot and is reported
// as a warning. The returned error joins every per-kind failure.
func (s *Service) Sync(ctx context.Context, kinds ...domain.Kind) ([]SyncResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("sync: no API client configured")
	}
	if len(kinds) == 0 {
		kinds = s.registry.Kinds()
	}
	for _, kind := range kinds {
		if _, err := s.registry.Get(kind); err != nil {
			return nil, fmt.Errorf("sync: %w", err)
		}
	}

	results := make([]SyncResult, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, kind := range kinds {
		g.Go(func() error {
			results[i] = s.syncKind(gctx, kind)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			s.warn(fmt.Sprintf("sync %s failed, keeping previous snapshot: %v", r.Kind, r.Err))
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (s *Service) syncKind(ctx context.Context, kind domain.Kind) SyncResult {
	gen := s.generation(kind)
	token := gen.Next()
	result := SyncResult{Kind: kind}

	raw, err := s.client.Fetch(ctx, kind)
	if !gen.IsLatest(token) {
		logging.Debug("discarding stale response", "kind", kind.String(), "token", token)
		result.Stale = true
		return result
	}
	if err != nil {
		result.Err = err
		return result
	}

	records := make([]domain.Record, 0, len(raw))
	for i, body := range raw {
		id, err := views.RecordID(body)
		if err != nil {
			result.Err = fmt.Errorf("%s record %d: %w", kind, i, err)
			return result
		}
		records = append(records, domain.Record{ID: id, Body: body})
	}
	records, dropped := dedup.Records(records)
	if dropped > 0 {
		logging.Warn("duplicate records in response", "kind", kind.String(), "dropped", dropped)
	}

	fetchedAt := s.now().UTC()
	saved, err := gen.Commit(token, func() error {
		return s.store.SaveSnapshot(kind, records, fetchedAt)
	})
	if err != nil {
		result.Err = fmt.Errorf("save %s snapshot: %w", kind, err)
		return result
	}
	if !saved {
		logging.Debug("discarding stale response", "kind", kind.String(), "token", token)
		result.Stale = true
		return result
	}
	logging.Info("synced collection", "kind", kind.String(), "count", len(records))
	result.Count = len(records)
	result.FetchedAt = fetchedAt
	return result
}
