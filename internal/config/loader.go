package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix  = "BETCAST_"
	envFileKey = "BETCAST_CONFIG"
)

var sourceKinds = map[string]bool{"http": true, "file": true, "redis": true}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BETCAST_CONFIG is set
//  3. env (prefix BETCAST_)
func Load(ctx context.Context) (*Config, error) {
	return LoadWithFlags(ctx, nil)
}

// LoadWithFlags is Load plus command-line flags the user actually set.
// Flag names use dashes for underscores, e.g. --source-kind.
func LoadWithFlags(_ context.Context, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envFileKey); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// BETCAST_SOURCE_KIND -> source_kind
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	if flags != nil {
		changed := map[string]interface{}{}
		flags.Visit(func(f *pflag.Flag) {
			changed[strings.ReplaceAll(f.Name, "-", "_")] = f.Value.String()
		})
		if err := k.Load(confmap.Provider(changed, "."), nil); err != nil {
			return nil, fmt.Errorf("%w: flags: %w", ErrLoadConfig, err)
		}
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !sourceKinds[c.SourceKind]:
		return fmt.Errorf("%w: unknown source_kind %q", ErrInvalidConfig, c.SourceKind)
	case utf8.RuneCountInString(c.Delimiter) != 1:
		return fmt.Errorf("%w: delimiter must be one character", ErrInvalidConfig)
	case strings.ContainsAny(c.Delimiter, "\"'\n"):
		return fmt.Errorf("%w: delimiter must not be a quote or newline", ErrInvalidConfig)
	case c.SampleOddsMin < 1 || c.SampleOddsMax < c.SampleOddsMin:
		return fmt.Errorf("%w: sample odds range must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.SampleWinProbability < 0 || c.SampleWinProbability > 1:
		return fmt.Errorf("%w: sample_win_probability must be within [0,1]", ErrInvalidConfig)
	case c.SampleWeeks < 1 || c.SampleBetsPerWeek < 1:
		return fmt.Errorf("%w: sample weeks and bets per week must be positive", ErrInvalidConfig)
	}
	if _, err := c.HistogramBuckets(); err != nil {
		return err
	}
	return nil
}

// HistogramBuckets parses MetricsBuckets. Buckets must be positive and
// strictly increasing; nil means the built-in buckets.
func (c *Config) HistogramBuckets() ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(c.MetricsBuckets, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: metrics_buckets: %w", ErrInvalidConfig, err)
		}
		if v <= 0 || (len(out) > 0 && v <= out[len(out)-1]) {
			return nil, fmt.Errorf("%w: metrics_buckets must be positive and increasing", ErrInvalidConfig)
		}
		out = append(out, v)
	}
	return out, nil
}

// Origins splits CORSOrigins.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
