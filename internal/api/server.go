// Package api exposes the plan generation pipeline over HTTP.
//
// The API is a thin layer: requests are decoded into pipeline options,
// executed through the shared [pipeline.Runner], and persisted via the
// configured [store.Store]. All routes live under /api/v1.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jwinther/homeplan/pkg/observability"
	"github.com/jwinther/homeplan/pkg/pipeline"
	"github.com/jwinther/homeplan/pkg/store"
)

// Server serves the homeplan HTTP API.
type Server struct {
	router chi.Router
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around the given store and pipeline runner.
func NewServer(st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{store: st, runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", s.handleCreatePlan)
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Delete("/plans/{id}", s.handleDeletePlan)
		r.Get("/plans/{id}/svg", s.handlePlanSVG)
		r.Get("/plans/{id}/dot", s.handlePlanDOT)
		r.Get("/plans/{id}/graph", s.handlePlanGraph)
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs each request with method, path, status and duration,
// and feeds the registered observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
