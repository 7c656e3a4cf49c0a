// Package server provides the local read-only dashboard API over the most
// recent match run and the run archive.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/matchllm/matchctl/internal/config"
	"github.com/matchllm/matchctl/internal/history"
	"github.com/matchllm/matchctl/internal/keyword"
)

// Server is the dashboard HTTP server. It never talks to the match backend
// itself; it only serves state produced by runs and the local stores.
type Server struct {
	state   *RunState
	history *history.Store
	keyword *keyword.Index
	config  *config.ServerConfig
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies. history and keyword
// may be nil; the corresponding endpoints then report 501.
func NewServer(
	state *RunState,
	hist *history.Store,
	kw *keyword.Index,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		state:   state,
		history: hist,
		keyword: kw,
		config:  cfg,
		logger:  logger,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/summary", s.handleSummary)
	r.Get("/api/v1/rows", s.handleRows)
	r.Get("/api/v1/runs", s.handleRuns)
	r.Get("/api/v1/runs/{id}", s.handleGetRun)
	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/export/csv", s.handleExportCSV)
	r.Get("/api/v1/export/xlsx", s.handleExportXLSX)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting dashboard server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
