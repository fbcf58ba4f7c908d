package metadata

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerSOS    = 0xDA
	markerEOI    = 0xD9
	markerAPP13  = 0xED

	resourceIptc = 0x0404

	iimTagMarker       = 0x1C
	iimApplication     = 2
	iimExtendedSizeBit = 0x8000
)

var (
	photoshopSignature = []byte("Photoshop 3.0\x00")
	resourceSignature  = []byte("8BIM")
)

// IPTC application record datasets and the field names they are exposed under
var iimDatasets = map[byte]string{
	90:  "City",
	92:  "SubLocation",
	95:  "ProvinceState",
	101: "Country",
}

func readIptc(data []byte) Fields {
	fields := Fields{}
	for _, segment := range jpegSegments(data, markerAPP13) {
		if !bytes.HasPrefix(segment, photoshopSignature) {
			continue
		}
		for _, block := range photoshopResources(segment[len(photoshopSignature):], resourceIptc) {
			parseIim(block, fields)
		}
	}
	return fields
}

// jpegSegments returns payloads of all segments with the given marker before image data
func jpegSegments(data []byte, marker byte) [][]byte {
	if len(data) < 4 || data[0] != markerPrefix || data[1] != markerSOI {
		return nil
	}

	var result [][]byte
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != markerPrefix {
			return result
		}
		m := data[pos+1]
		if m == markerPrefix {
			pos++
			continue
		}
		if m == markerSOS || m == markerEOI {
			return result
		}
		length := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		if length < 2 || pos+2+length > len(data) {
			return result
		}
		if m == marker {
			result = append(result, data[pos+4:pos+2+length])
		}
		pos += 2 + length
	}
	return result
}

func even(n int) int {
	return n + n%2
}

// photoshopResources returns data blocks of image resources with the given id
func photoshopResources(data []byte, id uint16) [][]byte {
	var result [][]byte
	pos := 0
	for pos+7 <= len(data) {
		if !bytes.Equal(data[pos:pos+4], resourceSignature) {
			return result
		}
		resourceID := binary.BigEndian.Uint16(data[pos+4 : pos+6])
		nameLen := int(data[pos+6])
		sizePos := pos + 6 + even(nameLen+1)
		if sizePos+4 > len(data) {
			return result
		}
		size := int(binary.BigEndian.Uint32(data[sizePos : sizePos+4]))
		start := sizePos + 4
		if size < 0 || start+size > len(data) {
			return result
		}
		if resourceID == id {
			result = append(result, data[start:start+size])
		}
		pos = start + even(size)
	}
	return result
}

func parseIim(data []byte, fields Fields) {
	pos := 0
	for pos+5 <= len(data) {
		if data[pos] != iimTagMarker {
			return
		}
		record := data[pos+1]
		dataset := data[pos+2]
		size := int(binary.BigEndian.Uint16(data[pos+3 : pos+5]))
		if size&iimExtendedSizeBit != 0 {
			return
		}
		start := pos + 5
		if start+size > len(data) {
			return
		}
		if record == iimApplication {
			if key, ok := iimDatasets[dataset]; ok {
				fields.set(key, decodeIimString(data[start:start+size]))
			}
		}
		pos = start + size
	}
}

func decodeIimString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(decoded)
}
