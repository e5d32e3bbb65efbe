package model

import (
	"encoding/json"
	"strconv"
)

// Value is a cell after numeric normalization: either a finite number or
// the original text, never both.
type Value struct {
	text  string
	num   float64
	isNum bool
}

// Number wraps a finite number.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// Text wraps a string that did not parse as a number.
func Text(s string) Value { return Value{text: s} }

// IsNumber reports whether the cell parsed as a number.
func (v Value) IsNumber() bool { return v.isNum }

// Float returns the number and true, or 0 and false for text cells.
func (v Value) Float() (float64, bool) {
	if !v.isNum {
		return 0, false
	}
	return v.num, true
}

// String renders numbers in shortest form and returns text unchanged.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

// MarshalJSON emits a JSON number or a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *Value) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*v = Text(s)
	return nil
}
