package service

import (
	"github.com/okian/betcast/internal/adapters/source"
	"github.com/okian/betcast/internal/config"
	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/sample"
	"github.com/okian/betcast/pkg/logger"
)

// NewFromConfig wires a Service with the configured parser and fallback
// generator. The caller owns src.
func NewFromConfig(cfg *config.Config, src source.Source, log logger.Logger) *Service {
	return New(
		WithSource(src),
		WithParser(csvparse.New(
			csvparse.WithDelimiter(cfg.DelimiterRune()),
			csvparse.WithLogger(log.Named("parser")),
		)),
		WithGenerator(GeneratorFromConfig(cfg)),
		WithLogger(log.Named("facade")),
	)
}

// GeneratorFromConfig builds the fallback generator. A zero seed means a
// fresh random sequence per call.
func GeneratorFromConfig(cfg *config.Config) *sample.Generator {
	opts := []sample.Option{
		sample.WithWeeks(cfg.SampleWeeks),
		sample.WithBetsPerWeek(cfg.SampleBetsPerWeek),
		sample.WithStake(cfg.SampleStake),
		sample.WithOddsRange(cfg.SampleOddsMin, cfg.SampleOddsMax),
		sample.WithWinProbability(cfg.SampleWinProbability),
		sample.WithStartingBalance(cfg.SampleStartingBalance),
	}
	if cfg.SampleSeed != 0 {
		opts = append(opts, sample.WithSeed(cfg.SampleSeed))
	}
	return sample.New(opts...)
}
