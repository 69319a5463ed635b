// Package server exposes the audit pipeline over HTTP: POST
// /api/analyze for the heuristic report and POST /api/full-report for
// the model-backed audit. Requests are stateless; every analysis is
// computed fresh.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gaurav-prasanna/claritycompass/core"
	"github.com/gaurav-prasanna/claritycompass/core/audit"
	"github.com/gaurav-prasanna/claritycompass/report"
)

// Server hosts the HTTP API.
type Server struct {
	addr       string
	logger     *slog.Logger
	httpServer *http.Server
}

// New creates a Server. fullReport may be nil when no model key is
// configured; the endpoint then reports the missing key.
func New(addr string, logger *slog.Logger, analyzer *audit.Analyzer, fetcher core.Fetcher, fullReport *report.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		analyzer:   analyzer,
		fetcher:    fetcher,
		fullReport: fullReport,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/analyze", h.Analyze)
	r.Post("/api/full-report", h.FullReport)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return &Server{
		addr:   addr,
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
