package scan

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalSort orders names locale-aware and numeric-aware, so "img2" goes before "img10".
// Names equal for the collator keep byte order to stay deterministic.
func NaturalSort(names []string) {
	c := collate.New(language.English, collate.Numeric, collate.Loose)
	sort.SliceStable(names, func(i, j int) bool {
		if r := c.CompareString(names[i], names[j]); r != 0 {
			return r < 0
		}
		return strings.Compare(names[i], names[j]) < 0
	})
}
