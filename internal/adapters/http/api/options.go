package api

import (
	"time"

	"github.com/okian/betcast/pkg/logger"
)

// RouterOption configures NewRouter.
type RouterOption func(*routerConfig)

// WithCORSOrigins sets the origins allowed to call the API.
func WithCORSOrigins(origins []string) RouterOption {
	return func(c *routerConfig) {
		if len(origins) > 0 {
			c.origins = origins
		}
	}
}

// WithRequestTimeout bounds each request, including the facade load.
func WithRequestTimeout(d time.Duration) RouterOption {
	return func(c *routerConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRequestLogger enables per-request logging.
func WithRequestLogger(l logger.Logger) RouterOption {
	return func(c *routerConfig) {
		c.logger = l
	}
}
