// Package metadata reads embedded capture metadata of images and derives item context from it
package metadata

import "strings"

// Fields is a flat mapping of metadata field names to values.
// Values are strings, numbers or time.Time.
type Fields map[string]interface{}

// candidate field names, in priority order
var (
	capturedAtKeys  = []string{"DateTimeOriginal", "CreateDate", "DateTimeDigitized", "ModifyDate"}
	latitudeKeys    = []string{"latitude", "Latitude", "GPSLatitude", "lat"}
	longitudeKeys   = []string{"longitude", "Longitude", "GPSLongitude", "lng", "lon"}
	subLocationKeys = []string{"SubLocation", "sublocation", "Location", "location"}
	cityKeys        = []string{"City", "city"}
	stateKeys       = []string{"ProvinceState", "State", "state", "RegionName", "regionName"}
	countryKeys     = []string{"Country", "CountryName", "country", "countryName"}
	makeKeys        = []string{"Make", "make"}
	modelKeys       = []string{"Model", "model"}
)

// PickFirst returns the first present non-empty value among keys
func PickFirst(f Fields, keys ...string) interface{} {
	for _, key := range keys {
		value, ok := f[key]
		if !ok || value == nil {
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return value
	}
	return nil
}

// merge copies keys of src which are not set in f yet
func (f Fields) merge(src Fields) {
	for k, v := range src {
		if _, ok := f[k]; !ok {
			f[k] = v
		}
	}
}

func (f Fields) set(key string, value interface{}) {
	if value == nil {
		return
	}
	if s, ok := value.(string); ok {
		value = cleanString(s)
		if value == "" {
			return
		}
	}
	if _, ok := f[key]; !ok {
		f[key] = value
	}
}

func cleanString(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\x00"))
}
