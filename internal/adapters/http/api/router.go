package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/okian/betcast/internal/adapters/http/swagger"
	"github.com/okian/betcast/pkg/logger"
	"github.com/okian/betcast/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultRequestTimeout = 30 * time.Second
	corsMaxAge            = 300
)

type routerConfig struct {
	origins []string
	timeout time.Duration
	logger  logger.Logger
}

// NewRouter builds the full HTTP surface: middleware, CORS, business
// routes, /metrics and the API docs.
func NewRouter(ctx context.Context, s *Server, opts ...RouterOption) http.Handler {
	cfg := routerConfig{
		origins: []string{"*"},
		timeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.logger != nil {
		r.Use(RequestLogger(cfg.logger))
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.timeout))

	// The dashboard is a browser client on another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{HeaderDataSource, HeaderLoadID},
		MaxAge:         corsMaxAge,
	}))

	s.Register(ctx, r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	swagger.Register(ctx, r)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})
	return r
}
