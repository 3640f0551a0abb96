package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold reduces a raw API spelling to the key used for vocabulary lookup:
// accents stripped, lowercased, then ", ", " ", "-" and "/" collapsed to "_"
// and parentheses removed. The replacement order matters: ", " must collapse
// before single spaces so "manuf (cmc)" and "Powder, Metered" fold the same
// way their canonical tokens do.
func Fold(s string) string {
	folded, _, _ := transform.String(stripAccents, strings.ToLower(s))
	folded = strings.ReplaceAll(folded, ", ", "_")
	folded = strings.ReplaceAll(folded, " ", "_")
	folded = strings.ReplaceAll(folded, "-", "_")
	folded = strings.ReplaceAll(folded, "(", "")
	folded = strings.ReplaceAll(folded, ")", "")
	folded = strings.ReplaceAll(folded, "/", "_")
	return folded
}
