// Package api serves the ingestion pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	service "github.com/okian/betcast/internal/app"
)

// Loader is the facade the data handlers call once per request.
type Loader interface {
	Load(ctx context.Context) service.Outcome
	Dashboard(ctx context.Context) service.Dashboard
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	dataHandler   *DataHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(loader Loader, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		dataHandler:   NewDataHandler(loader),
	}
}

// Register attaches the business routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", MetricsMiddleware(s.dataHandler.HandleDashboard, "dashboard"))
		r.Get("/bets", MetricsMiddleware(s.dataHandler.HandleBets, "bets"))
		r.Get("/summary", MetricsMiddleware(s.dataHandler.HandleSummary, "summary"))
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
