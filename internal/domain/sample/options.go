package sample

import (
	"time"

	"github.com/shopspring/decimal"
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithWeeks sets the number of weeks.
func WithWeeks(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.weeks = n
		}
	}
}

// WithBetsPerWeek sets the number of bets in each week.
func WithBetsPerWeek(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.betsPerWeek = n
		}
	}
}

// WithStake sets the fixed stake per bet.
func WithStake(stake float64) Option {
	return func(g *Generator) {
		if stake > 0 {
			g.stake = decimal.NewFromFloat(stake)
		}
	}
}

// WithOddsRange sets the uniform odds range. Decimal odds below 1 are ignored.
func WithOddsRange(minOdds, maxOdds float64) Option {
	return func(g *Generator) {
		if minOdds >= 1 && maxOdds >= minOdds {
			g.oddsMin = minOdds
			g.oddsMax = maxOdds
		}
	}
}

// WithWinProbability sets the chance that a bet wins.
func WithWinProbability(p float64) Option {
	return func(g *Generator) {
		if p >= 0 && p <= 1 {
			g.winProbability = p
		}
	}
}

// WithStartingBalance sets the balance before the first bet.
func WithStartingBalance(b float64) Option {
	return func(g *Generator) {
		g.startingBalance = decimal.NewFromFloat(b)
	}
}

// WithStartDate sets the first day of week 1.
func WithStartDate(t time.Time) Option {
	return func(g *Generator) {
		if !t.IsZero() {
			g.start = t
		}
	}
}

// WithSeed makes every Generate call return the same records.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = func() uint64 { return seed }
	}
}
