// Package nlp holds the lightweight text tooling used to rank memories and
// knowledge-base entries: normalisation, TF-IDF vectors and fuzzy matching.
package nlp

import (
	"strings"
	"unicode"
)

// diacritics maps the Romanian accented letters, including the legacy
// cedilla forms, to their base Latin letters.
var diacritics = map[rune]rune{
	'ă': 'a', 'â': 'a', 'î': 'i',
	'ș': 's', 'ş': 's', 'ț': 't', 'ţ': 't',
	'Ă': 'A', 'Â': 'A', 'Î': 'I',
	'Ș': 'S', 'Ş': 'S', 'Ț': 'T', 'Ţ': 'T',
}

func RemoveDiacritics(text string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := diacritics[r]; ok {
			return base
		}
		return r
	}, text)
}

// Fold lowercases text and strips diacritics rune by rune, so the result
// has exactly as many runes as the input.
func Fold(text string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := diacritics[r]; ok {
			r = base
		}
		return unicode.ToLower(r)
	}, text)
}

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == 'ă', r == 'â', r == 'î', r == 'ș', r == 'ş', r == 'ț', r == 'ţ':
		return true
	}
	return false
}

// Tokenize lowercases text and splits it into words made of ASCII letters,
// digits and Romanian diacritics. Everything else separates tokens.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !isTokenRune(r)
	})
}

// After returns the part of text that follows the first occurrence of
// marker, matched case- and diacritic-insensitively. The remainder keeps
// the original spelling and is trimmed.
func After(text, marker string) (string, bool) {
	runes := []rune(text)
	folded := []rune(Fold(text))
	needle := []rune(Fold(marker))
	if len(needle) == 0 {
		return strings.TrimSpace(text), true
	}

	for i := 0; i+len(needle) <= len(folded); i++ {
		if string(folded[i:i+len(needle)]) == string(needle) {
			return strings.TrimSpace(string(runes[i+len(needle):])), true
		}
	}
	return "", false
}
