package csvparse

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/betcast/internal/domain/fields"
	"github.com/okian/betcast/internal/domain/model"
)

// Encode writes bets as a sheet export using the label set's header row.
// Parsing the output yields the same canonical fields. Text cells may not
// contain ' or " since both toggle quoting on the way back in; such a bet
// fails with ErrQuoteInText.
func Encode(w io.Writer, bets []model.Bet, set fields.LabelSet, delim rune) error {
	labels, canonical := set.Header()
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(labels); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(canonical))
	for _, b := range bets {
		for i, name := range canonical {
			row[i] = cell(b, name)
			if strings.ContainsAny(row[i], `'"`) {
				return fmt.Errorf("write bet %d: %s %q: %w", b.ID, name, row[i], ErrQuoteInText)
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write bet %d: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func cell(b model.Bet, name string) string {
	switch name {
	case model.FieldID:
		return strconv.Itoa(b.ID)
	case model.FieldWeek:
		return formatFloat(b.Week)
	case model.FieldDateRange:
		return b.DateRange
	case model.FieldBetNumber:
		return strconv.Itoa(b.BetNumber)
	case model.FieldStake:
		return formatFloat(b.Stake)
	case model.FieldOdds:
		return formatFloat(b.Odds)
	case model.FieldResult:
		return b.Result
	case model.FieldProfitLoss:
		return formatFloat(b.ProfitLoss)
	case model.FieldSymbol:
		return b.Symbol
	case model.FieldCumulativeBudget:
		return formatFloat(b.CumulativeBudget)
	}
	return ""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
