// Package ui exposes the chart engines over a JSON HTTP API consumed
// by the host widgets.
package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"chartcore/app"
	"chartcore/internal"
)

// Server represents the chart API server.
type Server struct {
	router *chi.Mux
	charts *app.ChartService
	stats  *app.StatsService
	geo    *app.GeoService
	logger *internal.Logger
}

// NewServer wires the API server. geo may be nil when no geography
// loader is configured; the choropleth route then reports 503.
func NewServer(charts *app.ChartService, stats *app.StatsService, geo *app.GeoService, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router: chi.NewRouter(),
		charts: charts,
		stats:  stats,
		geo:    geo,
		logger: logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/charts/aggregate", s.handleAggregate)
		r.Post("/charts/choropleth", s.handleChoropleth)
		r.Get("/stats/describe", s.handleDescribe)
		r.Get("/stats/histogram", s.handleHistogram)
		r.Get("/stats/correlate", s.handleCorrelate)
		r.Get("/themes/{name}", s.handleTheme)
	})
}

// Router exposes the underlying handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given port.
func (s *Server) ListenAndServe(port string) error {
	addr := ":" + port
	s.logger.Info("chart API listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed: %v", err)
	s.writeJSON(w, status, map[string]string{"error": fmt.Sprintf("%v", err)})
}
