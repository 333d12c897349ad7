// Package text provides Unicode-level helpers for the outline pipeline:
// text normalization and script-based language detection.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies Unicode NFC composition and collapses runs of
// whitespace into single spaces. Composing accented forms first means
// French and Spanish diacritics compare equal regardless of whether the
// decoder produced precomposed or combining-mark sequences.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	composed := norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(composed))

	inSpace := false
	for _, r := range composed {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		inSpace = false
		sb.WriteRune(r)
	}

	return sb.String()
}

// Fold returns the normalized, case-folded form used for duplicate
// comparison: two headings are duplicates when their folded forms match.
func Fold(s string) string {
	return strings.ToLower(Normalize(s))
}

// IsNumericOnly reports whether the string contains digits (and digit
// punctuation like "." or "-") but no letters.
func IsNumericOnly(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			return false
		}
	}
	return hasDigit
}
