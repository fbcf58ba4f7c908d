// Package slug converts display names into URL-safe identifiers
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used when nothing is left after slugification
const Fallback = "memory"

var (
	nonAlnumExpr = regexp.MustCompile(`[^a-z0-9]+`)
	hyphensExpr  = regexp.MustCompile(`-{2,}`)
)

func stripMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	result, _, err := transform.String(t, s)
	if err != nil {
		return norm.NFKD.String(s)
	}
	return result
}

// Make returns lower-case ASCII slug of s, e.g. "Café de Flore" -> "cafe-de-flore"
func Make(s string) string {
	s = strings.ToLower(stripMarks(s))
	s = nonAlnumExpr.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = hyphensExpr.ReplaceAllString(s, "-")
	if s == "" {
		return Fallback
	}
	return s
}
