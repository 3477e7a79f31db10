package str

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ShortTitle truncates a title to 45 characters if necesary.
func ShortTitle(title string) string {
	rs := []rune(title)
	if len(rs) < 45 {
		return title
	}
	return string(rs[0:41]) + "..."
}

// Fold removes diacritics, so `Pérégrine Ménard` becomes
// `Peregrine Menard`.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return res
}

// Squeeze removes new lines and collapses runs of whitespace into one
// space.
func Squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
