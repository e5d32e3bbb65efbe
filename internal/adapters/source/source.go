// Package source retrieves raw sheet text for the ingestion pipeline.
package source

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/okian/betcast/internal/config"
)

// Kinds accepted by FromConfig.
const (
	KindHTTP  = "http"
	KindFile  = "file"
	KindRedis = "redis"
	KindFunc  = "func"
)

// Source returns the full raw text of a delimited table.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	Kind() string
}

// Func adapts a plain function to Source.
type Func func(ctx context.Context) (string, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context) (string, error) { return f(ctx) }

// Kind reports KindFunc.
func (Func) Kind() string { return KindFunc }

// FromConfig builds the configured source. Callers should close the result
// when it implements io.Closer.
func FromConfig(cfg *config.Config) (Source, error) {
	switch cfg.SourceKind {
	case KindHTTP:
		url := cfg.SheetURL
		if url == "" {
			url = PublishedSheetURL(cfg.SheetID, cfg.SheetGID)
		}
		return NewHTTP(url,
			WithProxyPrefix(cfg.ProxyPrefix),
			WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		), nil
	case KindFile:
		return NewFile(cfg.FilePath), nil
	case KindRedis:
		return NewRedis(cfg.RedisAddr, cfg.RedisKey,
			WithRedisPassword(cfg.RedisPassword),
			WithRedisDB(cfg.RedisDB),
		), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.SourceKind)
	}
}

// Close closes src if it holds resources.
func Close(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
