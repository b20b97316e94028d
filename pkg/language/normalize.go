// CLAUDE:SUMMARY Unicode normalization (NFKD + strip combining marks) used by the normalized dictionary mode.
package language

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeUnicode decomposes compatibility equivalents and removes
// combining marks (e.g. Décembre -> Decembre, ｊａｎ -> jan). The result is
// kept in decomposed form so it matches dictionary keys normalized the
// same way. Idempotent.
func NormalizeUnicode(s string) string {
	result, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return result
}
