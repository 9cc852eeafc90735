// Package http exposes the report API: health, report generation, report
// history, a live progress websocket and Prometheus metrics.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/creatorscope/creatorscope/internal/cache"
	"github.com/creatorscope/creatorscope/internal/config"
	"github.com/creatorscope/creatorscope/internal/persistence"
	"github.com/creatorscope/creatorscope/internal/report"
	"github.com/creatorscope/creatorscope/internal/telemetry"
)

// Deps are the collaborators the server serves from. Store may be nil when
// persistence is disabled.
type Deps struct {
	Builder   *report.Builder
	Cache     cache.Cache
	Store     persistence.ReportStore
	Telemetry *telemetry.Registry
	ReportTTL time.Duration
}

// Server is the JSON API server.
type Server struct {
	router *mux.Router
	server *http.Server
	deps   Deps
}

// NewServer wires routes and middleware for the given config and deps.
func NewServer(cfg config.HTTPConfig, deps Deps) *Server {
	s := &Server{
		router: mux.NewRouter(),
		deps:   deps,
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout.Std(),
		WriteTimeout: cfg.WriteTimeout.Std(),
		IdleTimeout:  cfg.IdleTimeout.Std(),
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/v1/report/{handle}", s.handleReport).Methods("GET")
	s.router.HandleFunc("/v1/report/{handle}/history", s.handleHistory).Methods("GET")
	s.router.HandleFunc("/v1/report/{handle}/live", s.handleLive).Methods("GET")
	s.router.Handle("/metrics", s.deps.Telemetry.Handler()).Methods("GET")

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type contextKey string

const requestIDKey contextKey = "request_id"

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
