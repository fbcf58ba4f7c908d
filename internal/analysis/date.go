package analysis

import (
	"regexp"
	"strconv"
	"time"
)

type datePattern struct {
	exp            *regexp.Regexp
	defaultHours   string
	defaultMinutes string
	defaultSeconds string
}

// patterns are tried in order; first match wins
var datePatterns = []datePattern{
	// compact: IMG_20230714_153045, 2023-07-14 1530, 20230714
	{
		exp:            regexp.MustCompile(`(20\d{2})[-_]?([01]\d)[-_]?([0-3]\d)(?:[^0-9]?([0-2]\d)([0-5]\d)([0-5]\d)?)?`),
		defaultHours:   "12",
		defaultMinutes: "00",
		defaultSeconds: "00",
	},
	// dashed: 2023-07-14-1530
	{
		exp:            regexp.MustCompile(`(20\d{2})-([01]\d)-([0-3]\d)(?:-([0-2]\d)([0-5]\d))?`),
		defaultHours:   "12",
		defaultMinutes: "00",
		defaultSeconds: "00",
	},
}

// DateFromFileName searches the base name (without extension) for an embedded date.
// Missing time is noon. The result is UTC.
func DateFromFileName(fileName string) (time.Time, bool) {
	baseName := BaseName(fileName)

	for _, p := range datePatterns {
		m := p.exp.FindStringSubmatch(baseName)
		if m == nil {
			continue
		}

		parts := make([]int, 6)
		defaults := []string{"", "", "", p.defaultHours, p.defaultMinutes, p.defaultSeconds}
		for i := range parts {
			s := defaults[i]
			if i+1 < len(m) && m[i+1] != "" {
				s = m[i+1]
			}
			parts[i], _ = strconv.Atoi(s)
		}

		// out of range month or day roll over like a calendar would
		return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, time.UTC), true
	}

	return time.Time{}, false
}
