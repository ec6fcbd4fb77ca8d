package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// first numeric token: optional sign, comma-grouped digits, optional decimals
var reNumToken = regexp.MustCompile(`-?\d[\d,]*\.?\d*`)

// Extract pulls the first numeric token out of a noisy cell value such as
// "£1,999.00" or "75 Nm" and parses it as a float. Thousands separators are
// insignificant. Returns false when no token matches.
func Extract(s string) (float64, bool) {
	m := reNumToken.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ExtractPtr is Extract with present-or-absent semantics for optional
// catalog fields.
func ExtractPtr(s string) *float64 {
	if f, ok := Extract(s); ok {
		return &f
	}
	return nil
}
