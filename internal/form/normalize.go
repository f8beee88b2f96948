// Package form turns raw control values into solver requests.
package form

import (
	"strings"
	"unicode"

	"github.com/kedare/wordsmith/internal/api"
)

// Validity is the style hint shown next to a text control.
type Validity int

const (
	ValidityNeutral Validity = iota
	ValidityValid
)

// NormalizeLetters folds case, drops everything outside a-z and keeps at most api.MaxLetters characters.
func NormalizeLetters(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range strings.ToLower(raw) {
		if r < 'a' || r > 'z' {
			continue
		}

		b.WriteRune(r)
		if b.Len() == api.MaxLetters {
			break
		}
	}

	return b.String()
}

// NormalizeAffix keeps only letters of a starts-with/ends-with control and upper-cases them for display.
func NormalizeAffix(raw string) string {
	var b strings.Builder

	for _, r := range raw {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			b.WriteRune(unicode.ToUpper(r))
		}
	}

	return b.String()
}

// ValidityOf returns the hint for a normalized value.
func ValidityOf(value string) Validity {
	if value == "" {
		return ValidityNeutral
	}

	return ValidityValid
}
