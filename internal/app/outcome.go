package service

import (
	"time"

	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/insights"
	"github.com/okian/betcast/internal/domain/model"
)

// Status tells callers whether data came from the sheet or the generator.
type Status string

// Load statuses.
const (
	StatusLive     Status = "live"
	StatusFallback Status = "fallback"
)

// Failure stages recorded when a load falls back.
const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// Outcome is the result of one load: records, their weekly summaries and
// whether they are live or generated.
type Outcome struct {
	LoadID   string                 `json:"loadId"`
	Status   Status                 `json:"status"`
	Stage    string                 `json:"stage,omitempty"`
	Reason   string                 `json:"reason,omitempty"`
	Source   string                 `json:"source"`
	Bets     []model.Bet            `json:"bets"`
	Weeks    []model.WeeklySummary  `json:"weeks"`
	Skipped  []csvparse.SkippedLine `json:"skipped,omitempty"`
	Issues   []csvparse.CellIssue   `json:"issues,omitempty"`
	LoadedAt time.Time              `json:"loadedAt"`
	Duration time.Duration          `json:"-"`
	err      error
}

// Live reports whether the data came from the configured source.
func (o Outcome) Live() bool { return o.Status == StatusLive }

// Err is the failure that caused a fallback, or nil.
func (o Outcome) Err() error { return o.err }

// Dashboard is an Outcome plus the chart series derived from it.
type Dashboard struct {
	Outcome
	Charts insights.Series `json:"charts"`
}
