// Package model contains domain models passed between layers.
package model

import (
	"bytes"
	"encoding/json"
)

// Canonical field names. These are also the JSON keys of a Bet.
const (
	FieldID               = "id"
	FieldWeek             = "week"
	FieldDateRange        = "dateRange"
	FieldBetNumber        = "betNumber"
	FieldStake            = "stake"
	FieldOdds             = "odds"
	FieldResult           = "result"
	FieldProfitLoss       = "profitLoss"
	FieldSymbol           = "symbol"
	FieldCumulativeBudget = "cumulativeBudget"
)

// Outcome values recognized by aggregation. Matching is exact.
const (
	ResultWin  = "Win"
	ResultLose = "Lose"
)

// CanonicalFields lists the canonical fields in record order.
var CanonicalFields = []string{
	FieldID, FieldWeek, FieldDateRange, FieldBetNumber, FieldStake,
	FieldOdds, FieldResult, FieldProfitLoss, FieldSymbol, FieldCumulativeBudget,
}

// IsCanonical reports whether name is one of CanonicalFields.
func IsCanonical(name string) bool {
	for _, f := range CanonicalFields {
		if f == name {
			return true
		}
	}
	return false
}

// Field is a pass-through column whose header had no canonical mapping.
type Field struct {
	Name  string
	Value Value
}

// Bet is one canonical bet record.
type Bet struct {
	ID               int     // 1-based, parse order
	Week             float64 // grouping key
	DateRange        string  // display label
	BetNumber        int     // position within the current week run
	Stake            float64
	Odds             float64
	Result           string
	ProfitLoss       float64
	Symbol           string
	CumulativeBudget float64 // running balance after this bet

	// Extra holds pass-through columns in header order.
	Extra []Field
}

// IsWin reports an exact "Win" outcome.
func (b Bet) IsWin() bool { return b.Result == ResultWin }

// IsLoss reports an exact "Lose" outcome.
func (b Bet) IsLoss() bool { return b.Result == ResultLose }

// Lookup returns a pass-through field by its original header.
func (b Bet) Lookup(name string) (Value, bool) {
	for _, f := range b.Extra {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// SetExtra stores a pass-through field, replacing an earlier one with the same name.
func (b *Bet) SetExtra(name string, v Value) {
	for i := range b.Extra {
		if b.Extra[i].Name == name {
			b.Extra[i].Value = v
			return
		}
	}
	b.Extra = append(b.Extra, Field{Name: name, Value: v})
}

// MarshalJSON flattens pass-through fields next to the canonical ones.
func (b Bet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}
	pairs := []struct {
		k string
		v any
	}{
		{FieldID, b.ID},
		{FieldWeek, b.Week},
		{FieldDateRange, b.DateRange},
		{FieldBetNumber, b.BetNumber},
		{FieldStake, b.Stake},
		{FieldOdds, b.Odds},
		{FieldResult, b.Result},
		{FieldProfitLoss, b.ProfitLoss},
		{FieldSymbol, b.Symbol},
		{FieldCumulativeBudget, b.CumulativeBudget},
	}
	for _, p := range pairs {
		if err := write(p.k, p.v); err != nil {
			return nil, err
		}
	}
	for _, f := range b.Extra {
		if IsCanonical(f.Name) {
			continue
		}
		if err := write(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WeeklySummary aggregates all bets sharing a week value.
type WeeklySummary struct {
	Week             float64 `json:"week"`
	DateRange        string  `json:"dateRange"`
	Bets             int     `json:"bets"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinRate          float64 `json:"winRate"`
	TotalProfitLoss  float64 `json:"totalProfitLoss"`
	CumulativeBudget float64 `json:"cumulativeBudget"`
}
