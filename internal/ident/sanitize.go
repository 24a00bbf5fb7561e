package ident

import "strings"

// Sanitize maps an external name onto the safe identifier set
// [A-Za-z0-9_], replacing every other rune with "_" and prefixing a leading
// digit with "_". Already-safe names are returned unchanged, so Sanitize is
// idempotent.
func Sanitize(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name) + 1)

	if isDigit(rune(name[0])) {
		b.WriteByte('_')
	}

	for _, r := range name {
		if isLetter(r) || isDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}

// IsSafe reports whether name is already a sanitized identifier.
func IsSafe(name string) bool {
	return name != "" && Sanitize(name) == name
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
