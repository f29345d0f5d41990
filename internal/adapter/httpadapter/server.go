// Package httpadapter exposes the dashboard UI, the report API, and the
// health, readiness, and metrics endpoints.
package httpadapter

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rk-304/nyc-collision-dashboard/internal/domain"
	"github.com/rk-304/nyc-collision-dashboard/internal/report"
)

//go:embed static/index.html
var indexHTML []byte

// ReportService builds reports and exposes dataset metadata.
type ReportService interface {
	CheckReadiness(ctx context.Context) error
	DatasetRange(ctx context.Context) (domain.DateRange, error)
	BuildReport(ctx context.Context, start, end time.Time) report.Report
}

// CacheBuster invalidates the dataset cache.
type CacheBuster interface {
	Bust()
}

// Server serves the dashboard and its API.
type Server struct {
	httpServer *http.Server
	reports    ReportService
	cache      CacheBuster
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, reports ReportService, cache CacheBuster, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		reports: reports,
		cache:   cache,
		logger:  logger,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/dataset/range", s.handleDatasetRange)
	mux.HandleFunc("POST /api/cache/bust", s.handleCacheBust)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML) //nolint:errcheck // best-effort static page
}

// handleReport runs the pipeline for the requested range. Data-shaped
// failures (fetch errors, empty ranges) come back as 200s with an error or
// warning field — the UI renders them inline. Only malformed requests are
// HTTP errors.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	start, ok := parseDateParam(w, r, "start")
	if !ok {
		return
	}
	end, ok := parseDateParam(w, r, "end")
	if !ok {
		return
	}

	rep := s.reports.BuildReport(r.Context(), start, end)
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleDatasetRange(w http.ResponseWriter, r *http.Request) {
	rng, err := s.reports.DatasetRange(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"start": rng.Start.Format(time.DateOnly),
		"end":   rng.End.Format(time.DateOnly),
	})
}

func (s *Server) handleCacheBust(w http.ResponseWriter, _ *http.Request) {
	s.cache.Bust()
	s.logger.Info("dataset cache busted")
	writeJSON(w, http.StatusOK, map[string]string{"status": "cache busted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.reports.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. A missing
// parameter yields a zero time; a malformed one writes a 400 and returns
// ok=false.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid " + name + " date, expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return t, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
