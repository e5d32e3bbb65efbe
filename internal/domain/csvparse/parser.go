// Package csvparse turns published-sheet CSV text into canonical bet records.
package csvparse

import (
	"context"
	"strings"

	"github.com/okian/betcast/internal/domain/fields"
	"github.com/okian/betcast/internal/domain/model"
	"github.com/okian/betcast/internal/domain/numeric"
	"github.com/okian/betcast/pkg/logger"
)

const defaultDelimiter = ','

// Skip reasons.
const (
	SkipFieldCount = "field_count"
	SkipBlank      = "blank"
)

// SkippedLine is a data line that produced no record.
type SkippedLine struct {
	Line   int    `json:"line"` // 1-based, header is line 1
	Reason string `json:"reason"`
	Fields int    `json:"fields"`
	Want   int    `json:"want"`
}

// CellIssue is a numeric canonical cell that did not parse and was set to 0.
type CellIssue struct {
	Line   int    `json:"line"`
	Header string `json:"header"`
	Field  string `json:"field"`
	Raw    string `json:"raw"`
}

// Result is everything one Parse call produced.
type Result struct {
	Headers []string
	Bets    []model.Bet
	Skipped []SkippedLine
	Issues  []CellIssue
}

// Parser is safe for concurrent use; all per-call state lives in Parse.
type Parser struct {
	delimiter rune
	logger    logger.Logger
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{delimiter: defaultDelimiter}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts text into records. Malformed lines are reported in the
// result and never abort the parse.
func (p *Parser) Parse(ctx context.Context, text string) *Result {
	res := &Result{}
	text = strings.TrimSpace(text)
	if text == "" {
		return res
	}
	lines := strings.Split(text, "\n")
	res.Headers = SplitHeader(strings.TrimRight(lines[0], "\r"), p.delimiter)

	var seq sequence
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			res.Skipped = append(res.Skipped, SkippedLine{Line: lineNo, Reason: SkipBlank, Want: len(res.Headers)})
			continue
		}
		cells := SplitLine(line, p.delimiter)
		if len(cells) != len(res.Headers) {
			res.Skipped = append(res.Skipped, SkippedLine{
				Line:   lineNo,
				Reason: SkipFieldCount,
				Fields: len(cells),
				Want:   len(res.Headers),
			})
			p.debug(ctx, "skipping malformed line",
				logger.Int("line", lineNo),
				logger.Int("fields", len(cells)),
				logger.Int("want", len(res.Headers)))
			continue
		}
		bet, issues := p.record(lineNo, res.Headers, cells)
		bet.ID, bet.BetNumber = seq.next(bet.Week)
		res.Bets = append(res.Bets, bet)
		res.Issues = append(res.Issues, issues...)
	}
	return res
}

// Parse is a convenience wrapper returning only the records.
func Parse(text string) []model.Bet {
	return New().Parse(context.Background(), text).Bets
}

func (p *Parser) record(lineNo int, headers, cells []string) (model.Bet, []CellIssue) {
	var (
		bet    model.Bet
		issues []CellIssue
	)
	num := func(header, field, raw string) float64 {
		f, ok := numeric.Parse(raw)
		if !ok {
			issues = append(issues, CellIssue{Line: lineNo, Header: header, Field: field, Raw: raw})
		}
		return f
	}
	for i, header := range headers {
		raw := cells[i]
		switch name := fields.Map(header); name {
		case model.FieldID, model.FieldBetNumber:
			// assigned by sequence
		case model.FieldWeek:
			bet.Week = num(header, name, raw)
		case model.FieldStake:
			bet.Stake = num(header, name, raw)
		case model.FieldOdds:
			bet.Odds = num(header, name, raw)
		case model.FieldProfitLoss:
			bet.ProfitLoss = num(header, name, raw)
		case model.FieldCumulativeBudget:
			bet.CumulativeBudget = num(header, name, raw)
		case model.FieldDateRange:
			bet.DateRange = raw
		case model.FieldResult:
			bet.Result = raw
		case model.FieldSymbol:
			bet.Symbol = raw
		default:
			bet.SetExtra(name, numeric.Normalize(raw))
		}
	}
	return bet, issues
}

func (p *Parser) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if p.logger != nil {
		p.logger.Debug(ctx, msg, fields...)
	}
}

// sequence assigns ids and per-week bet numbers for a single parse.
type sequence struct {
	id        int
	week      float64
	betNumber int
}

// next restarts the bet number whenever week differs from the previous
// record's week, including when an earlier week value comes back.
func (s *sequence) next(week float64) (id, betNumber int) {
	s.id++
	if s.id == 1 || week != s.week {
		s.betNumber = 0
	}
	s.week = week
	s.betNumber++
	return s.id, s.betNumber
}
