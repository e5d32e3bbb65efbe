// Package summary folds bet records into one summary per week.
package summary

import (
	"github.com/okian/betcast/internal/domain/model"
	"github.com/shopspring/decimal"
)

type group struct {
	summary model.WeeklySummary
	total   decimal.Decimal
}

// Weekly groups bets by exact week value, in first-occurrence order.
// Non-contiguous runs of a week join the same group; the closing balance is
// taken from the group's last bet in input order.
func Weekly(bets []model.Bet) []model.WeeklySummary {
	var (
		order  []float64
		groups = make(map[float64]*group)
	)
	for _, b := range bets {
		g, ok := groups[b.Week]
		if !ok {
			g = &group{summary: model.WeeklySummary{Week: b.Week, DateRange: b.DateRange}}
			groups[b.Week] = g
			order = append(order, b.Week)
		}
		g.summary.Bets++
		switch {
		case b.IsWin():
			g.summary.Wins++
		case b.IsLoss():
			g.summary.Losses++
		}
		g.total = g.total.Add(decimal.NewFromFloat(b.ProfitLoss))
		g.summary.CumulativeBudget = b.CumulativeBudget
	}

	out := make([]model.WeeklySummary, 0, len(order))
	for _, w := range order {
		g := groups[w]
		g.summary.WinRate = WinRate(g.summary.Wins, g.summary.Losses)
		g.summary.TotalProfitLoss = g.total.Round(2).InexactFloat64()
		out = append(out, g.summary)
	}
	return out
}

// WinRate is wins/(wins+losses), or 0 when neither occurred.
func WinRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return float64(wins) / float64(wins+losses)
}
