package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops the combining marks so that
// accented and plain forms compare equal ("Bénin" -> "benin").
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases, trims surrounding whitespace and removes diacritics.
// Empty input yields an empty string; it never fails.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	result, _, err := transform.String(stripAccents, text)
	if err != nil {
		return text
	}
	return result
}

// SignificantWords splits a query into normalized words, discarding noise
// tokens of length <= 2 ("de", "à", "le"...).
func SignificantWords(query string) []string {
	var words []string
	for _, w := range strings.Fields(Normalize(query)) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
