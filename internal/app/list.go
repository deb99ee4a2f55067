package app

import (
	"fmt"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// DefaultState returns the initial query state of kind's view.
func (s *Service) DefaultState(kind domain.Kind) (query.State, error) {
	view, err := s.registry.Get(kind)
	if err != nil {
		return query.State{}, err
	}
	return query.NewState(view.DefaultSort()), nil
}

// List runs state against the stored snapshot of kind. A kind that was never
// synced is an empty collection. pageSize <= 0 uses the configured size.
func (s *Service) List(kind domain.Kind, state query.State, pageSize int) (views.Page, error) {
	view, err := s.registry.Get(kind)
	if err != nil {
		return views.Page{}, err
	}
	snap, err := s.store.LoadSnapshot(kind)
	if err != nil {
		return views.Page{}, fmt.Errorf("load %s snapshot: %w", kind, err)
	}
	if pageSize <= 0 {
		pageSize = s.opts.PageSize
	}
	page, err := view.Run(snap.Records, state, query.Options{
		PageSize: pageSize,
		Provider: s.provider,
		Locale:   s.opts.Locale,
	})
	if err != nil {
		return views.Page{}, fmt.Errorf("list %s: %w", kind, err)
	}
	return page, nil
}
