// Package fields maps spreadsheet column headers onto canonical bet fields.
//
// Lookup is exact: case, accents and spacing must match one of the known
// spellings. Anything else is a pass-through column.
package fields

import "github.com/okian/betcast/internal/domain/model"

// LabelSet is one schema revision's header row, keyed by canonical field.
type LabelSet struct {
	Name   string
	Labels map[string]string
}

// Greek is the sheet's native header row.
var Greek = LabelSet{
	Name: "greek",
	Labels: map[string]string{
		model.FieldWeek:             "Εβδομάδα",
		model.FieldDateRange:        "Ημερομηνίες",
		model.FieldBetNumber:        "Στοίχημα #",
		model.FieldStake:            "Ποντάρισμα",
		model.FieldOdds:             "Απόδοση",
		model.FieldResult:           "Αποτέλεσμα",
		model.FieldProfitLoss:       "Κέρδος/Ζημιά",
		model.FieldSymbol:           "✓ / ✗",
		model.FieldCumulativeBudget: "Σωρευτικό Budget",
	},
}

// English is the alternate header row.
var English = LabelSet{
	Name: "english",
	Labels: map[string]string{
		model.FieldWeek:             "Week",
		model.FieldDateRange:        "Date Range",
		model.FieldStake:            "Stake",
		model.FieldOdds:             "odd",
		model.FieldResult:           "Win / Lose",
		model.FieldProfitLoss:       "Profit / Loss",
		model.FieldSymbol:           "Symbol (Win / Loss)",
		model.FieldCumulativeBudget: "Cumulative Budget",
	},
}

var lookup = build(Greek, English)

func build(sets ...LabelSet) map[string]string {
	m := make(map[string]string)
	for _, name := range model.CanonicalFields {
		m[name] = name
	}
	for _, s := range sets {
		for canonical, label := range s.Labels {
			m[label] = canonical
		}
	}
	return m
}

// Canonical returns the canonical field for header, if known.
func Canonical(header string) (string, bool) {
	c, ok := lookup[header]
	return c, ok
}

// Map returns the canonical field for header, or header itself.
func Map(header string) string {
	if c, ok := lookup[header]; ok {
		return c
	}
	return header
}

// LabelSetByName returns the named label set.
func LabelSetByName(name string) (LabelSet, bool) {
	switch name {
	case Greek.Name:
		return Greek, true
	case English.Name:
		return English, true
	}
	return LabelSet{}, false
}

// Header returns the label set's header row in canonical field order.
// Fields the set has no label for are omitted.
func (s LabelSet) Header() (labels, canonical []string) {
	for _, name := range model.CanonicalFields {
		if l, ok := s.Labels[name]; ok {
			labels = append(labels, l)
			canonical = append(canonical, name)
		}
	}
	return labels, canonical
}
