package csvparse

import "strings"

// isQuote reports the characters that open and close a quoted segment.
// Double and single quotes are interchangeable, so an apostrophe inside an
// unquoted value also toggles quoting.
func isQuote(r rune) bool { return r == '"' || r == '\'' }

// SplitLine tokenizes one data line. The delimiter separates fields only
// outside quotes; quote characters are dropped and each field is trimmed.
func SplitLine(line string, delim rune) []string {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
	)
	for _, r := range line {
		switch {
		case isQuote(r):
			quoted = !quoted
		case r == delim && !quoted:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(out, strings.TrimSpace(cur.String()))
}

// SplitHeader splits the header line on every delimiter, trims each label
// and removes one surrounding quote character at either end.
func SplitHeader(line string, delim rune) []string {
	parts := strings.Split(line, string(delim))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" && isQuote(rune(p[0])) {
			p = p[1:]
		}
		if p != "" && isQuote(rune(p[len(p)-1])) {
			p = p[:len(p)-1]
		}
		parts[i] = p
	}
	return parts
}
