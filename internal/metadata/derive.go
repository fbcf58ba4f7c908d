package metadata

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

// numeric values below are seconds since epoch (negative ones included), otherwise milliseconds
const epochSecondsLimit = 10000000000

// JavaScript-compatible date range, in milliseconds
const maxEpochMillis = 8.64e15

var (
	captureDateExpr  = regexp.MustCompile(`^(\d{4}):(\d{2}):(\d{2})`)
	captureTimeExpr  = regexp.MustCompile(` (\d{2}:\d{2}:\d{2})$`)
	numberPrefixExpr = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
}

// NormalizeDate converts date-like value into ISO-8601 timestamp, empty string means no date
func NormalizeDate(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return model.FormatTimestamp(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return NormalizeDate(*v)
	case string:
		return normalizeDateString(v)
	}

	number, ok := toFloat(value)
	if !ok || number == 0 || math.IsNaN(number) || math.IsInf(number, 0) {
		return ""
	}
	if number < epochSecondsLimit {
		number *= 1000
	}
	if math.Abs(number) > maxEpochMillis {
		return ""
	}
	return model.FormatTimestamp(time.UnixMilli(int64(number)))
}

func normalizeDateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = captureDateExpr.ReplaceAllString(s, "$1-$2-$3")
	s = captureTimeExpr.ReplaceAllString(s, "T$1")

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return model.FormatTimestamp(t)
		}
	}
	return ""
}

func toFloat(value interface{}) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// NormalizeCoordinate coerces value to a finite number rounded to 6 decimal places
func NormalizeCoordinate(value interface{}) *float64 {
	var number float64

	switch v := value.(type) {
	case nil:
		return nil
	case string:
		prefix := numberPrefixExpr.FindString(strings.TrimSpace(v))
		if prefix == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(prefix, 64)
		if err != nil {
			return nil
		}
		number = parsed
	default:
		parsed, ok := toFloat(value)
		if !ok {
			return nil
		}
		number = parsed
	}

	if math.IsNaN(number) || math.IsInf(number, 0) {
		return nil
	}
	rounded := math.Round(number*1e6) / 1e6
	return &rounded
}

func stringValue(value interface{}) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

// LocationLabel joins sub-location, city, state and country, dropping case-insensitive duplicates
func LocationLabel(f Fields) string {
	groups := [][]string{subLocationKeys, cityKeys, stateKeys, countryKeys}

	var parts []string
	seen := map[string]bool{}
	for _, keys := range groups {
		part := stringValue(PickFirst(f, keys...))
		if part == "" {
			continue
		}
		normalized := strings.ToLower(part)
		if !seen[normalized] {
			seen[normalized] = true
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}

// DeviceLabel combines camera make and model. Model which already starts with make is used alone.
func DeviceLabel(f Fields) string {
	maker := stringValue(PickFirst(f, makeKeys...))
	camera := stringValue(PickFirst(f, modelKeys...))

	if maker != "" && camera != "" {
		if strings.HasPrefix(strings.ToLower(camera), strings.ToLower(maker)) {
			return camera
		}
		return maker + " " + camera
	}
	if maker != "" {
		return maker
	}
	return camera
}

// Derive builds item context from metadata fields, nil when nothing is known
func Derive(f Fields) *model.Context {
	if len(f) == 0 {
		return nil
	}

	ctx := &model.Context{
		CapturedAt: NormalizeDate(PickFirst(f, capturedAtKeys...)),
		Location:   LocationLabel(f),
		Latitude:   NormalizeCoordinate(PickFirst(f, latitudeKeys...)),
		Longitude:  NormalizeCoordinate(PickFirst(f, longitudeKeys...)),
		Device:     DeviceLabel(f),
	}

	return ctx.Compact()
}
