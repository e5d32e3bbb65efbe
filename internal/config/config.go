// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers file, env and flags on top of New().
package config

// Default sheet location: the published BetCast tracking sheet, read through
// a CORS proxy that takes the target URL appended verbatim.
const (
	DefaultSheetID     = "e/2PACX-1vTbj_mc5tRE9rQsBFNlEDO78wJRcmfHYNWHM75WRdTJ37GXjNSYsgIs-AiNuj3wjG8eGRHNbEwlEuEx"
	DefaultProxyPrefix = "https://corsproxy.io/?"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects "text" or "json" output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SourceKind selects where sheet text comes from: http, file or redis.
	SourceKind string `koanf:"source_kind"`

	// SheetURL overrides the URL built from SheetID and SheetGID.
	SheetURL string `koanf:"sheet_url"`
	SheetID  string `koanf:"sheet_id"`
	SheetGID string `koanf:"sheet_gid"`

	// ProxyPrefix is prepended to the sheet URL. Empty disables proxying.
	ProxyPrefix string `koanf:"proxy_prefix"`

	// FetchTimeoutMS bounds one HTTP fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// FilePath is read when SourceKind is file.
	FilePath string `koanf:"file_path"`

	// Redis settings used when SourceKind is redis.
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
	RedisKey      string `koanf:"redis_key"`

	// Delimiter is the single-character field separator.
	Delimiter string `koanf:"delimiter"`

	// Sample settings shape the fallback data.
	SampleWeeks           int     `koanf:"sample_weeks"`
	SampleBetsPerWeek     int     `koanf:"sample_bets_per_week"`
	SampleStake           float64 `koanf:"sample_stake"`
	SampleOddsMin         float64 `koanf:"sample_odds_min"`
	SampleOddsMax         float64 `koanf:"sample_odds_max"`
	SampleWinProbability  float64 `koanf:"sample_win_probability"`
	SampleStartingBalance float64 `koanf:"sample_starting_balance"`
	// SampleSeed fixes the fallback data when non-zero.
	SampleSeed uint64 `koanf:"sample_seed"`

	// CORSOrigins lists origins allowed to call the API, comma separated.
	CORSOrigins string `koanf:"cors_origins"`

	// Metric names are namespace_subsystem_name.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`
	// MetricsBuckets are comma separated latency buckets in milliseconds.
	// Empty keeps the built-in buckets.
	MetricsBuckets string `koanf:"metrics_buckets"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Addr:                  ":9080",
		SourceKind:            "http",
		SheetID:               DefaultSheetID,
		SheetGID:              "0",
		ProxyPrefix:           DefaultProxyPrefix,
		FetchTimeoutMS:        15_000,
		RedisAddr:             "localhost:6379",
		RedisKey:              "betcast:sheet",
		Delimiter:             ",",
		SampleWeeks:           8,
		SampleBetsPerWeek:     5,
		SampleStake:           10,
		SampleOddsMin:         1.5,
		SampleOddsMax:         3.5,
		SampleWinProbability:  0.55,
		SampleStartingBalance: 100,
		CORSOrigins:           "*",
		MetricsNamespace:      "betcast",
		MetricsSubsystem:      "ingest",
	}
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
