package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	xmpStart = []byte("<x:xmpmeta")
	xmpEnd   = []byte("</x:xmpmeta>")
)

const (
	nsPhotoshop = "http://ns.adobe.com/photoshop/1.0/"
	nsIptcCore  = "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/"
	nsExif      = "http://ns.adobe.com/exif/1.0/"
	nsXmp       = "http://ns.adobe.com/xap/1.0/"
	nsTiff      = "http://ns.adobe.com/tiff/1.0/"
)

type xmpProperty struct {
	space string
	local string
}

// XMP properties and the field names they are exposed under
var xmpProperties = map[xmpProperty]string{
	{nsPhotoshop, "City"}:         "City",
	{nsPhotoshop, "State"}:        "State",
	{nsPhotoshop, "Country"}:      "Country",
	{nsIptcCore, "Location"}:      "Location",
	{nsExif, "DateTimeOriginal"}:  "DateTimeOriginal",
	{nsExif, "DateTimeDigitized"}: "DateTimeDigitized",
	{nsXmp, "CreateDate"}:         "CreateDate",
	{nsXmp, "ModifyDate"}:         "ModifyDate",
	{nsTiff, "Make"}:              "Make",
	{nsTiff, "Model"}:             "Model",
	{nsExif, "GPSLatitude"}:       "latitude",
	{nsExif, "GPSLongitude"}:      "longitude",
}

func findXmpPacket(data []byte) []byte {
	start := bytes.Index(data, xmpStart)
	if start < 0 {
		return nil
	}
	end := bytes.Index(data[start:], xmpEnd)
	if end < 0 {
		return nil
	}
	return data[start : start+end+len(xmpEnd)]
}

func readXmp(data []byte) (Fields, error) {
	packet := findXmpPacket(data)
	if packet == nil {
		return nil, nil
	}

	fields := Fields{}
	d := xml.NewDecoder(bytes.NewReader(packet))
	d.Strict = false

	pending := ""
	var text strings.Builder

	for {
		token, err := d.Token()
		if err != nil {
			// keep whatever was collected before the broken part
			if errors.Is(err, io.EOF) || len(fields) != 0 {
				return fields, nil
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			for _, attr := range t.Attr {
				if key, ok := xmpProperties[xmpProperty{attr.Name.Space, attr.Name.Local}]; ok {
					fields.set(key, xmpValue(key, attr.Value))
				}
			}
			if pending == "" {
				if key, ok := xmpProperties[xmpProperty{t.Name.Space, t.Name.Local}]; ok {
					pending = key
					text.Reset()
				}
			}

		case xml.CharData:
			if pending != "" && text.Len() == 0 {
				text.WriteString(strings.TrimSpace(string(t)))
			}

		case xml.EndElement:
			if key, ok := xmpProperties[xmpProperty{t.Name.Space, t.Name.Local}]; ok && key == pending {
				fields.set(key, xmpValue(key, text.String()))
				pending = ""
			}
		}
	}
}

func xmpValue(key, value string) interface{} {
	if key == "latitude" || key == "longitude" {
		if coord, ok := parseXmpCoordinate(value); ok {
			return coord
		}
		return nil
	}
	return value
}

// parseXmpCoordinate parses "DDD,MM,SSk" and "DDD,MM.mmk" forms, k is N, S, E or W
func parseXmpCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	sign := 1.0
	switch s[len(s)-1] {
	case 'N', 'n', 'E', 'e':
		s = s[:len(s)-1]
	case 'S', 's', 'W', 'w':
		sign = -1
		s = s[:len(s)-1]
	}

	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return 0, false
	}

	result := 0.0
	divider := 1.0
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, false
		}
		result += v / divider
		divider *= 60
	}

	return sign * result, true
}
