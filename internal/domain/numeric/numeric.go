// Package numeric turns locale-formatted spreadsheet cells into numbers.
//
// A cell is a number when, after trimming and removing one currency marker
// at either end, the remaining text parses as a finite float once its first
// comma is read as the decimal separator. Everything else stays text.
// Thousands grouping ("1,234") is not recognized: the comma is always taken
// as decimal.
package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/betcast/internal/domain/model"
)

var currencyMarkers = []string{"€", "$", "£", "EUR"}

// Normalize returns the parsed number, or the original string unchanged.
func Normalize(raw string) model.Value {
	if f, ok := Parse(raw); ok {
		return model.Number(f)
	}
	return model.Text(raw)
}

// Parse reports the numeric value of raw, if any.
func Parse(raw string) (float64, bool) {
	s := stripCurrency(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	s = strings.Replace(s, ",", ".", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stripCurrency(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	for _, m := range currencyMarkers {
		if strings.HasPrefix(s, m) {
			s = strings.TrimSpace(strings.TrimPrefix(s, m))
			break
		}
		if strings.HasSuffix(s, m) {
			s = strings.TrimSpace(strings.TrimSuffix(s, m))
			break
		}
	}
	return sign + s
}
