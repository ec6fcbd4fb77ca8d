package identity

import "strings"

// Norm trims surrounding whitespace; empty in, empty out.
func Norm(s string) string { return strings.TrimSpace(s) }

// NormLower is the lowercased Norm, used wherever values from different
// sources must compare equal regardless of casing.
func NormLower(s string) string { return strings.ToLower(Norm(s)) }
