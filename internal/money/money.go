// Package money parses and formats Colombian peso amounts the way the
// storefront displays them: "$5.000" with dots as thousands separators and
// an optional comma decimal part.
package money

import (
	"strconv"
	"strings"
)

// ParseCOP converts a display string into whole pesos. Accepted inputs:
// "$5.000", "5.000", "$ 12.500,50" (decimal part truncated), plain digits.
// Malformed input parses to 0, never an error, matching the tolerance the
// list pipeline requires from numeric fields.
func ParseCOP(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)
	// Drop the decimal part; prices are whole pesos.
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ".", "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatCOP renders whole pesos as "$5.000".
func FormatCOP(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
		if len(digits) > pre {
			b.WriteByte('.')
		}
	}
	for i := pre; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
