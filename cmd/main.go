package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/betcast/internal/adapters/http/api"
	"github.com/okian/betcast/internal/adapters/source"
	app "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/internal/config"
	"github.com/okian/betcast/pkg/logger"
	"github.com/okian/betcast/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
	// Covers the sheet fetch plus parsing.
	writeSlack = 5 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server exited", logger.Error(err))
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if err := initMetrics(cfg); err != nil {
		return err
	}
	src, err := source.FromConfig(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := source.Close(src); err != nil {
			log.Warn(ctx, "closing source", logger.Error(err))
		}
	}()

	svc := app.NewFromConfig(cfg, src, log)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      requestTimeout(cfg) + writeSlack,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server",
			logger.String("addr", cfg.Addr),
			logger.String("source", src.Kind()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info(ctx, "server stopped")
	return nil
}

func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) http.Handler {
	return api.NewRouter(ctx, api.NewServer(svc, svc),
		api.WithCORSOrigins(cfg.Origins()),
		api.WithRequestTimeout(requestTimeout(cfg)),
		api.WithRequestLogger(log.Named("http")),
	)
}

func initMetrics(cfg *config.Config) error {
	buckets, err := cfg.HistogramBuckets()
	if err != nil {
		return err
	}
	metrics.Init(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithSubsystem(cfg.MetricsSubsystem),
		metrics.WithHistogramBuckets(buckets),
	)
	return nil
}

// requestTimeout leaves room for one full sheet fetch.
func requestTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.FetchTimeoutMS)*time.Millisecond + writeSlack
}
