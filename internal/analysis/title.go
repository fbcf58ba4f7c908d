package analysis

import (
	"regexp"
	"strings"
)

var separatorsExpr = regexp.MustCompile(`[_-]+`)

// NormalizeTitle makes display title from a file or folder name: underscores and hyphens become
// spaces, whitespace runs collapse into one space
func NormalizeTitle(name string) string {
	name = separatorsExpr.ReplaceAllString(name, " ")
	return strings.Join(strings.Fields(name), " ")
}
