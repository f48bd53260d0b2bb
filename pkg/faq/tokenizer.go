package faq

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenize folds diacritics, lower-cases and splits text into word tokens.
// Anything that is not a letter, digit or underscore acts as a separator.
func Tokenize(text string) []string {
	folded := strings.ToLower(foldDiacritics(text))
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !isWordRune(r)
	})
}

// Normalize returns the tokens of text joined by single spaces.
func Normalize(text string) string {
	return strings.Join(Tokenize(text), " ")
}

func foldDiacritics(text string) string {
	// transform.Chain keeps state, so a fresh chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runeLen(s string) int {
	return len([]rune(s))
}
