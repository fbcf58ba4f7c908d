package model

import "time"

// TimestampLayout is ISO-8601 UTC with milliseconds
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
