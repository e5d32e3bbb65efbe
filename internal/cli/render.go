package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	service "github.com/okian/betcast/internal/app"
	"github.com/okian/betcast/internal/domain/csvparse"
	"github.com/okian/betcast/internal/domain/model"
)

var (
	liveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	fallbackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // gray
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	lossStyle     = cellStyle.Foreground(lipgloss.Color("9"))
	gainStyle     = cellStyle.Foreground(lipgloss.Color("10"))
)

func renderBanner(o service.Outcome) string {
	if o.Live() {
		return liveStyle.Render("LIVE") + " " +
			mutedStyle.Render(fmt.Sprintf("%d bets from %s source, load %s", len(o.Bets), o.Source, o.LoadID))
	}
	return fallbackStyle.Render("FALLBACK") + " " +
		mutedStyle.Render(fmt.Sprintf("generated data (%s failed: %s)", o.Stage, o.Reason))
}

// renderWeeks prints one row per summary; the profit column is colored by sign.
func renderWeeks(weeks []model.WeeklySummary) string {
	const profitCol = 6
	rows := make([][]string, len(weeks))
	for i, w := range weeks {
		rows[i] = []string{
			formatNumber(w.Week),
			w.DateRange,
			strconv.Itoa(w.Bets),
			strconv.Itoa(w.Wins),
			strconv.Itoa(w.Losses),
			fmt.Sprintf("%.0f%%", w.WinRate*100),
			fmt.Sprintf("%.2f", w.TotalProfitLoss),
			fmt.Sprintf("%.2f", w.CumulativeBudget),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Week", "Dates", "Bets", "Wins", "Losses", "Win rate", "P/L", "Budget").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == profitCol && row >= 0 && row < len(weeks) {
				if weeks[row].TotalProfitLoss < 0 {
					return lossStyle
				}
				return gainStyle
			}
			return cellStyle
		}).
		Render()
}

func renderBets(bets []model.Bet) string {
	rows := make([][]string, len(bets))
	for i, b := range bets {
		rows[i] = []string{
			strconv.Itoa(b.ID),
			formatNumber(b.Week),
			strconv.Itoa(b.BetNumber),
			fmt.Sprintf("%.2f", b.Stake),
			fmt.Sprintf("%.2f", b.Odds),
			b.Result,
			fmt.Sprintf("%.2f", b.ProfitLoss),
			fmt.Sprintf("%.2f", b.CumulativeBudget),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Week", "Bet", "Stake", "Odds", "Result", "P/L", "Budget").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func renderProblems(o service.Outcome) string {
	var b strings.Builder
	for _, s := range o.Skipped {
		fmt.Fprintf(&b, "line %d skipped (%s", s.Line, s.Reason)
		if s.Want > 0 && s.Reason != csvparse.SkipBlank {
			fmt.Fprintf(&b, ": %d fields, want %d", s.Fields, s.Want)
		}
		b.WriteString(")\n")
	}
	for _, c := range o.Issues {
		fmt.Fprintf(&b, "line %d: %q in %q is not a number, used 0\n", c.Line, c.Raw, c.Header)
	}
	return mutedStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// formatNumber drops the fraction of whole numbers.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
