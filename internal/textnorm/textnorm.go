// Package textnorm normalises the raw cell text found in documentation
// tables: whitespace collapsing, indentation measurement, and ASCII-safe
// identifier casing.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes runes (NFKD) and drops the combining marks, so an
// accented Latin letter reduces to its base letter instead of disappearing or
// duplicating.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Collapse converts non-breaking spaces to ordinary spaces, folds every run
// of whitespace into a single space, and trims the result.
func Collapse(raw string) string {
	raw = strings.ReplaceAll(raw, "\u00a0", " ")
	return strings.Join(strings.Fields(raw), " ")
}

// LeadingIndent measures the indentation of a name cell: the count of leading
// ordinary spaces after non-breaking spaces have been converted. Source
// tables use both to visually nest fields.
func LeadingIndent(raw string) int {
	if raw == "" {
		return 0
	}
	raw = strings.ReplaceAll(raw, "\u00a0", " ")
	return len(raw) - len(strings.TrimLeft(raw, " "))
}

// PascalCase converts text to PascalCase using only ASCII letters and digits.
// Diacritics are stripped via canonical decomposition and any remaining
// non-ASCII runes are discarded, so a stray encoding artifact never leaks
// into the identifier. Empty input yields an empty identifier.
func PascalCase(text string) string {
	if text == "" {
		return ""
	}

	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}

	var out strings.Builder
	wordStart := true
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z':
			if wordStart {
				out.WriteRune(unicode.ToUpper(r))
			} else {
				out.WriteRune(r)
			}
			wordStart = false
		case r >= 'A' && r <= 'Z':
			if wordStart {
				out.WriteRune(r)
			} else {
				out.WriteRune(unicode.ToLower(r))
			}
			wordStart = false
		case r >= '0' && r <= '9':
			out.WriteRune(r)
			wordStart = false
		default:
			// Any separator (or surviving non-ASCII rune) ends the word.
			wordStart = true
		}
	}
	return out.String()
}
