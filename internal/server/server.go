// Package server exposes list queries over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/format"
	"github.com/cristianoliveira/hrdesk/internal/logging"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

const (
	outcomeOK       = "ok"
	outcomeBadInput = "bad_request"
	outcomeError    = "error"

	shutdownTimeout = 5 * time.Second
)

// Lister runs list queries. *app.Service satisfies it.
type Lister interface {
	List(kind domain.Kind, state query.State, pageSize int) (views.Page, error)
	Registry() *views.Registry
	PageSize() int
}

// Server serves the read API.
type Server struct {
	svc     Lister
	metrics *Metrics
}

// New creates a Server for svc.
func New(svc Lister) *Server {
	return &Server{svc: svc, metrics: NewMetrics()}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/kinds", s.kinds)
		api.Get("/{kind}", s.list)
	})
	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logging.Info("http server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type kindDocument struct {
	Kind    string   `json:"kind"`
	Noun    string   `json:"noun"`
	Sort    []string `json:"sort_fields"`
	Filters []string `json:"filters"`
}

func (s *Server) kinds(w http.ResponseWriter, _ *http.Request) {
	registry := s.svc.Registry()
	out := make([]kindDocument, 0)
	for _, kind := range registry.Kinds() {
		view, err := registry.Get(kind)
		if err != nil {
			continue
		}
		doc := kindDocument{Kind: kind.String(), Noun: view.Noun(), Sort: view.SortFields(), Filters: []string{}}
		for _, def := range view.Filters() {
			doc.Filters = append(doc.Filters, def.Name)
		}
		out = append(out, doc)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kindParam := chi.URLParam(r, "kind")

	kind, err := domain.ParseKind(kindParam)
	if err != nil {
		s.metrics.observe("unknown", outcomeBadInput, 0)
		writeError(w, http.StatusNotFound, err)
		return
	}
	view, err := s.svc.Registry().Get(kind)
	if err != nil {
		s.metrics.observe(kind.String(), outcomeBadInput, 0)
		writeError(w, http.StatusNotFound, err)
		return
	}

	state, pageSize, err := views.ParseParams(view, r.URL.Query(), s.svc.PageSize())
	if err != nil {
		s.metrics.observe(kind.String(), outcomeBadInput, 0)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := s.svc.List(kind, state, pageSize)
	if err != nil {
		s.metrics.observe(kind.String(), outcomeError, 0)
		logging.Error("list query failed", "kind", kind.String(), "error", err.Error())
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.metrics.observe(kind.String(), outcomeOK, time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, format.NewPageDocument(page))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// requestLogger writes one structured log entry per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
