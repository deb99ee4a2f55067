package main

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/hrdesk/internal/apiclient"
	"github.com/cristianoliveira/hrdesk/internal/app"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/logging"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/storage"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

// runtime builds the application service on first use, after the root
// command has loaded configuration.
type runtime struct {
	once  sync.Once
	svc   *app.Service
	store storage.Storage
	err   error
}

var rt = &runtime{}

func (r *runtime) service() (*app.Service, error) {
	r.once.Do(func() {
		store, err := storage.NewFromConfig()
		if err != nil {
			r.err = fmt.Errorf("open storage: %w", err)
			return
		}
		client := apiclient.New(
			config.Get("api_base_url", ""),
			config.Get("api_token", ""),
			config.GetDuration("request_timeout", apiclient.DefaultTimeout),
		)
		svc, err := app.NewService(store, client, views.NewRegistry(), app.Options{
			PageSize:   config.GetInt("page_size", query.DefaultPageSize),
			SearchMode: config.Get("search_mode", ""),
			Locale:     config.Get("collation_locale", query.DefaultLocale),
		})
		if err != nil {
			_ = store.Close()
			r.err = err
			return
		}
		logging.Debug("service ready", "api_base_url", config.Get("api_base_url", ""), "storage_backend", config.Get("storage_backend", ""))
		r.store, r.svc = store, svc
	})
	return r.svc, r.err
}

// Close releases the storage if it was opened.
func (r *runtime) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}
