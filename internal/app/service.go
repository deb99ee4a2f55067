// Package app holds the use-cases shared by the CLI, the browser and the
// HTTP API: syncing snapshots from the backend and querying them.
package app

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cristianoliveira/hrdesk/internal/apiclient"
	"github.com/cristianoliveira/hrdesk/internal/colors"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/search"
	"github.com/cristianoliveira/hrdesk/internal/storage"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// Client is the part of the backend API the service needs.
type Client interface {
	Fetch(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// Options tunes how collections are queried.
type Options struct {
	PageSize   int
	SearchMode string
	Locale     string
}

// Service coordinates the snapshot store, the backend client and the views.
type Service struct {
	store    storage.Storage
	client   Client
	registry *views.Registry
	opts     Options
	provider search.Provider
	now      func() time.Time
	warn     func(msg string)

	mu   sync.Mutex
	gens map[domain.Kind]*apiclient.Generation
}

// NewService creates a Service. It fails when opts names an unknown search mode.
func NewService(store storage.Storage, client Client, registry *views.Registry, opts Options) (*Service, error) {
	if store == nil {
		panic("NewService: store dependency cannot be nil")
	}
	if registry == nil {
		registry = views.NewRegistry()
	}
	provider, err := search.ByName(opts.SearchMode)
	if err != nil {
		return nil, err
	}
	if opts.PageSize <= 0 {
		opts.PageSize = query.DefaultPageSize
	}
	if opts.Locale == "" {
		opts.Locale = query.DefaultLocale
	}
	return &Service{
		store:    store,
		client:   client,
		registry: registry,
		opts:     opts,
		provider: provider,
		now:      time.Now,
		warn:     func(msg string) { colors.Warning(msg) },
		gens:     make(map[domain.Kind]*apiclient.Generation),
	}, nil
}

// OnWarning redirects sync warnings, which go to the console by default.
func (s *Service) OnWarning(fn func(msg string)) {
	if fn != nil {
		s.warn = fn
	}
}

// PageSize returns the configured page size.
func (s *Service) PageSize() int {
	return s.opts.PageSize
}

// Registry returns the views the service queries.
func (s *Service) Registry() *views.Registry {
	return s.registry
}

func (s *Service) generation(kind domain.Kind) *apiclient.Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gens[kind]
	if !ok {
		g = &apiclient.Generation{}
		s.gens[kind] = g
	}
	return g
}
