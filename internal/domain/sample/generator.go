// Package sample generates synthetic bet records shaped exactly like parsed
// sheet data. It backs the fallback path when the live sheet is unavailable.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/okian/betcast/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Defaults mirror the published sheet's layout.
const (
	defaultWeeks           = 8
	defaultBetsPerWeek     = 5
	defaultStake           = 10
	defaultOddsMin         = 1.5
	defaultOddsMax         = 3.5
	defaultWinProbability  = 0.55
	defaultStartingBalance = 100
	daysPerWeek            = 7

	SymbolWin  = "✓"
	SymbolLose = "✗"
)

var defaultStart = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

// Generator produces weeks × betsPerWeek records with a running balance.
// Each Generate call draws from its own random source, so a Generator can be
// shared between goroutines.
type Generator struct {
	weeks           int
	betsPerWeek     int
	stake           decimal.Decimal
	oddsMin         float64
	oddsMax         float64
	winProbability  float64
	startingBalance decimal.Decimal
	start           time.Time
	seed            func() uint64
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		weeks:           defaultWeeks,
		betsPerWeek:     defaultBetsPerWeek,
		stake:           decimal.NewFromInt(defaultStake),
		oddsMin:         defaultOddsMin,
		oddsMax:         defaultOddsMax,
		winProbability:  defaultWinProbability,
		startingBalance: decimal.NewFromInt(defaultStartingBalance),
		start:           defaultStart,
		seed:            func() uint64 { return uint64(time.Now().UnixNano()) }, //nolint:gosec // non-negative
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a fresh record set.
func (g *Generator) Generate() []model.Bet {
	s := g.seed()
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)) //nolint:gosec // synthetic data

	bets := make([]model.Bet, 0, g.weeks*g.betsPerWeek)
	balance := g.startingBalance
	one := decimal.NewFromInt(1)
	spread := g.oddsMax - g.oddsMin

	for w := 1; w <= g.weeks; w++ {
		label := g.dateRange(w)
		for n := 1; n <= g.betsPerWeek; n++ {
			odds := decimal.NewFromFloat(g.oddsMin + rng.Float64()*spread).Round(2)
			win := rng.Float64() < g.winProbability

			result, symbol := model.ResultLose, SymbolLose
			profit := g.stake.Neg()
			if win {
				result, symbol = model.ResultWin, SymbolWin
				profit = g.stake.Mul(odds.Sub(one)).Round(2)
			}
			balance = balance.Add(profit)

			bets = append(bets, model.Bet{
				ID:               len(bets) + 1,
				Week:             float64(w),
				DateRange:        label,
				BetNumber:        n,
				Stake:            g.stake.InexactFloat64(),
				Odds:             odds.InexactFloat64(),
				Result:           result,
				ProfitLoss:       profit.InexactFloat64(),
				Symbol:           symbol,
				CumulativeBudget: balance.InexactFloat64(),
			})
		}
	}
	return bets
}

// dateRange labels the 7-day window of week w, e.g. "1-7/5/2025" or
// "29/5-4/6/2025".
func (g *Generator) dateRange(w int) string {
	from := g.start.AddDate(0, 0, (w-1)*daysPerWeek)
	to := from.AddDate(0, 0, daysPerWeek-1)
	switch {
	case from.Year() != to.Year():
		return fmt.Sprintf("%d/%d/%d-%d/%d/%d", from.Day(), from.Month(), from.Year(), to.Day(), to.Month(), to.Year())
	case from.Month() != to.Month():
		return fmt.Sprintf("%d/%d-%d/%d/%d", from.Day(), from.Month(), to.Day(), to.Month(), to.Year())
	default:
		return fmt.Sprintf("%d-%d/%d/%d", from.Day(), to.Day(), to.Month(), to.Year())
	}
}
