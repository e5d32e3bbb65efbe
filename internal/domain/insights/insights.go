// Package insights derives the chart series the dashboard plots from the
// canonical records and weekly summaries.
package insights

import (
	"math"

	"github.com/okian/betcast/internal/domain/model"
	"github.com/shopspring/decimal"
)

// BudgetPoint is the balance after one bet.
type BudgetPoint struct {
	ID     int     `json:"id"`
	Value  float64 `json:"value"`
	Result string  `json:"result"`
}

// WeekProfit is one bar of the weekly profit chart.
type WeekProfit struct {
	Week   float64 `json:"week"`
	Profit float64 `json:"profit"`
	Budget float64 `json:"budget"`
}

// WeekRate is the weekly win rate as a percentage with one decimal.
type WeekRate struct {
	Week    float64 `json:"week"`
	WinRate float64 `json:"winRate"`
}

// Totals counts outcomes across all bets.
type Totals struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// OddsBucket counts bets whose odds fall in [Min, Max). Max is 0 for the
// open-ended top bucket.
type OddsBucket struct {
	Range    string  `json:"range"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max,omitempty"`
	Count    int     `json:"count"`
	WinCount int     `json:"winCount"`
}

// Series bundles every derived series.
type Series struct {
	Budget           []BudgetPoint `json:"budget"`
	WeeklyProfit     []WeekProfit  `json:"weeklyProfit"`
	WinRateByWeek    []WeekRate    `json:"winRateByWeek"`
	Totals           Totals        `json:"totals"`
	OddsDistribution []OddsBucket  `json:"oddsDistribution"`
}

// Build derives all series. Summaries must come from the same bets.
func Build(bets []model.Bet, weeks []model.WeeklySummary) Series {
	return Series{
		Budget:           Budget(bets),
		WeeklyProfit:     WeeklyProfit(weeks),
		WinRateByWeek:    WinRateByWeek(weeks),
		Totals:           Outcomes(bets),
		OddsDistribution: OddsDistribution(bets),
	}
}

// Budget returns the running balance in record order.
func Budget(bets []model.Bet) []BudgetPoint {
	out := make([]BudgetPoint, len(bets))
	for i, b := range bets {
		out[i] = BudgetPoint{ID: b.ID, Value: b.CumulativeBudget, Result: b.Result}
	}
	return out
}

// WeeklyProfit pairs each week's net result with its closing balance.
func WeeklyProfit(weeks []model.WeeklySummary) []WeekProfit {
	out := make([]WeekProfit, len(weeks))
	for i, w := range weeks {
		out[i] = WeekProfit{Week: w.Week, Profit: w.TotalProfitLoss, Budget: w.CumulativeBudget}
	}
	return out
}

// WinRateByWeek converts each week's rate to a rounded percentage.
func WinRateByWeek(weeks []model.WeeklySummary) []WeekRate {
	out := make([]WeekRate, len(weeks))
	for i, w := range weeks {
		pct := decimal.NewFromFloat(w.WinRate).Mul(decimal.NewFromInt(100)).Round(1)
		out[i] = WeekRate{Week: w.Week, WinRate: pct.InexactFloat64()}
	}
	return out
}

// Outcomes counts exact Win and Lose results.
func Outcomes(bets []model.Bet) Totals {
	var t Totals
	for _, b := range bets {
		switch {
		case b.IsWin():
			t.Wins++
		case b.IsLoss():
			t.Losses++
		}
	}
	return t
}

type bucketBound struct{ min, max float64 }

// bounds are eight 0.25-wide buckets from 1.50 to 3.50, then 3.50-5.00 and 5.00+.
var bounds = func() []bucketBound {
	var b []bucketBound
	for i := 0; i < 8; i++ {
		lo := 1.5 + float64(i)*0.25
		b = append(b, bucketBound{lo, lo + 0.25})
	}
	return append(b, bucketBound{3.5, 5}, bucketBound{5, math.Inf(1)})
}()

// OddsDistribution buckets bets by odds, omitting empty buckets. Odds below
// 1.50 fall in no bucket.
func OddsDistribution(bets []model.Bet) []OddsBucket {
	buckets := make([]OddsBucket, len(bounds))
	for i, bb := range bounds {
		buckets[i] = OddsBucket{Range: label(bb), Min: bb.min, Max: bb.max}
	}
	for _, b := range bets {
		for i, bb := range bounds {
			if b.Odds >= bb.min && b.Odds < bb.max {
				buckets[i].Count++
				if b.IsWin() {
					buckets[i].WinCount++
				}
				break
			}
		}
	}
	out := buckets[:0]
	for _, bk := range buckets {
		if bk.Count > 0 {
			out = append(out, bk)
		}
	}
	for i := range out {
		if math.IsInf(out[i].Max, 1) {
			out[i].Max = 0
		}
	}
	return out
}

func label(b bucketBound) string {
	lo := decimal.NewFromFloat(b.min).StringFixed(2)
	if math.IsInf(b.max, 1) {
		return lo + "+"
	}
	return lo + " - " + decimal.NewFromFloat(b.max).StringFixed(2)
}
