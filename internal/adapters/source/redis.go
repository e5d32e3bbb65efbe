package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client the source needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// Redis reads sheet text stored as a plain string under one key.
type Redis struct {
	client   RedisClient
	key      string
	addr     string
	password string
	db       int
}

// NewRedis creates a Redis source. The connection is lazy.
func NewRedis(addr, key string, opts ...RedisOption) *Redis {
	r := &Redis{addr: addr, key: key}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = redis.NewClient(&redis.Options{
			Addr:     r.addr,
			Password: r.password,
			DB:       r.db,
		})
	}
	return r
}

// Kind reports KindRedis.
func (r *Redis) Kind() string { return KindRedis }

// Fetch returns the stored text. A missing key is an error.
func (r *Redis) Fetch(ctx context.Context) (string, error) {
	if r.key == "" {
		return "", ErrNoLocation
	}
	text, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, r.key)
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return text, nil
}

// Store replaces the stored text.
func (r *Redis) Store(ctx context.Context, text string, ttl time.Duration) error {
	if r.key == "" {
		return ErrNoLocation
	}
	if err := r.client.Set(ctx, r.key, text, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

// RedisOption configures a Redis source.
type RedisOption func(*Redis)

// WithRedisPassword sets the AUTH password.
func WithRedisPassword(p string) RedisOption {
	return func(r *Redis) { r.password = p }
}

// WithRedisDB selects the logical database.
func WithRedisDB(db int) RedisOption {
	return func(r *Redis) {
		if db >= 0 {
			r.db = db
		}
	}
}

// WithRedisClient injects a client, e.g. one built from redis.ParseURL.
func WithRedisClient(c RedisClient) RedisOption {
	return func(r *Redis) {
		if c != nil {
			r.client = c
		}
	}
}
