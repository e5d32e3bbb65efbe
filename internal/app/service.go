// Package service provides the data source facade: fetch sheet text, parse
// it, summarize it, and substitute generated data when any step fails.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/betcast/internal/adapters/source"
	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/insights"
	"github.com/okian/betcast/internal/domain/sample"
	"github.com/okian/betcast/internal/domain/summary"
	"github.com/okian/betcast/pkg/logger"
	"github.com/okian/betcast/pkg/metrics"
)

// Parser turns sheet text into records.
type Parser interface {
	Parse(ctx context.Context, text string) *csvparse.Result
}

// Service is the single integration point for presentation code. Loads are
// independent; the only shared state is the counters behind GetStats.
type Service struct {
	source    source.Source
	parser    Parser
	generator *sample.Generator
	logger    logger.Logger
	now       func() time.Time

	mu   sync.RWMutex
	last Outcome
	runs struct {
		loads, live, fallback int
	}
}

// New constructs a new Service with default configuration. Without
// WithLogger the global logger must already be initialized.
func New(opts ...Option) *Service {
	s := &Service{
		parser:    csvparse.New(),
		generator: sample.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Named("facade")
	}
	return s
}

// Load obtains the current records and summaries. It never fails: any
// fetch or parse error yields generated data with StatusFallback.
func (s *Service) Load(ctx context.Context) Outcome {
	start := s.now()
	o := Outcome{LoadID: uuid.NewString(), LoadedAt: start}

	if s.source == nil {
		s.fallback(ctx, &o, StageFetch, ErrNoSource)
		return s.finish(ctx, o, start)
	}
	o.Source = s.source.Kind()

	text, err := s.fetch(ctx)
	if err != nil {
		s.fallback(ctx, &o, StageFetch, err)
		return s.finish(ctx, o, start)
	}

	res, err := s.parse(ctx, text)
	if err != nil {
		s.fallback(ctx, &o, StageParse, err)
		return s.finish(ctx, o, start)
	}

	o.Status = StatusLive
	o.Bets = res.Bets
	o.Skipped = res.Skipped
	o.Issues = res.Issues
	o.Weeks = summary.Weekly(o.Bets)

	metrics.RecordRowsAccepted(len(res.Bets))
	for _, sk := range res.Skipped {
		metrics.RecordRowSkipped(sk.Reason)
	}
	metrics.RecordCellIssues(len(res.Issues))
	if len(res.Skipped) > 0 || len(res.Issues) > 0 {
		s.logger.Warn(ctx, "sheet has rows that need attention",
			logger.String("load_id", o.LoadID),
			logger.Int("skipped", len(res.Skipped)),
			logger.Int("cell_issues", len(res.Issues)))
	}
	return s.finish(ctx, o, start)
}

// Dashboard loads and derives chart series in one call.
func (s *Service) Dashboard(ctx context.Context) Dashboard {
	o := s.Load(ctx)
	return Dashboard{Outcome: o, Charts: insights.Build(o.Bets, o.Weeks)}
}

func (s *Service) fetch(ctx context.Context) (string, error) {
	start := s.now()
	text, err := s.source.Fetch(ctx)
	result := "ok"
	if err != nil {
		result = "error"
		metrics.RecordErrorByComponent("source", s.source.Kind())
	}
	metrics.RecordFetchLatency(s.source.Kind(), result, float64(s.now().Sub(start).Milliseconds()))
	return text, err
}

// parse turns a parser panic into an error so the load can fall back.
func (s *Service) parse(ctx context.Context, text string) (res *csvparse.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordErrorByComponent("parser", "panic")
			err = fmt.Errorf("%w: %v", ErrParsePanic, r)
		}
	}()
	return s.parser.Parse(ctx, text), nil
}

func (s *Service) fallback(ctx context.Context, o *Outcome, stage string, err error) {
	o.Status = StatusFallback
	o.Stage = stage
	o.Reason = err.Error()
	o.err = err
	o.Bets = s.generator.Generate()
	o.Weeks = summary.Weekly(o.Bets)
	metrics.RecordFallback(stage)
	s.logger.Warn(ctx, "using fallback data",
		logger.String("load_id", o.LoadID),
		logger.String("stage", stage),
		logger.String("source", o.Source),
		logger.Error(err))
}

func (s *Service) finish(ctx context.Context, o Outcome, start time.Time) Outcome {
	o.Duration = s.now().Sub(start)
	metrics.RecordLoad(string(o.Status), len(o.Bets), len(o.Weeks),
		float64(o.Duration.Milliseconds()), o.LoadedAt.Unix())

	s.mu.Lock()
	s.runs.loads++
	if o.Live() {
		s.runs.live++
	} else {
		s.runs.fallback++
	}
	s.last = o
	s.mu.Unlock()

	if o.Live() {
		s.logger.Info(ctx, "loaded sheet",
			logger.String("load_id", o.LoadID),
			logger.String("source", o.Source),
			logger.Int("bets", len(o.Bets)),
			logger.Int("weeks", len(o.Weeks)),
			logger.Duration("took", o.Duration))
	}
	return o
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"loads":    s.runs.loads,
		"live":     s.runs.live,
		"fallback": s.runs.fallback,
	}
	if s.source != nil {
		stats["source"] = s.source.Kind()
	}
	if s.runs.loads > 0 {
		stats["lastLoadId"] = s.last.LoadID
		stats["lastStatus"] = string(s.last.Status)
		stats["lastLoadedAt"] = s.last.LoadedAt.UTC().Format(time.RFC3339)
		stats["lastBets"] = len(s.last.Bets)
		stats["lastWeeks"] = len(s.last.Weeks)
		if s.last.Reason != "" {
			stats["lastReason"] = s.last.Reason
		}
	}
	return stats
}
