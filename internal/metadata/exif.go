package metadata

import (
	"bytes"
	"encoding/binary"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// EXIF tags exposed under the names used by other metadata sources
var exifAliases = map[exif.FieldName]string{
	exif.DateTimeDigitized: "CreateDate",
	exif.DateTime:          "ModifyDate",
}

var (
	pngSignature = []byte("\x89PNG\r\n\x1a\n")
	pngExifChunk = []byte("eXIf")
	exifHeader   = []byte("Exif\x00\x00")
	tiffHeaders  = [][]byte{[]byte("II*\x00"), []byte("MM\x00*")}
)

func hasTiffHeader(data []byte) bool {
	for _, h := range tiffHeaders {
		if bytes.HasPrefix(data, h) {
			return true
		}
	}
	return false
}

// pngChunk returns data of the first chunk of the given type
func pngChunk(data []byte, chunkType []byte) []byte {
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		start := pos + 8
		if length < 0 || length > len(data)-start {
			return nil
		}
		if bytes.Equal(data[pos+4:pos+8], chunkType) {
			return data[start : start+length]
		}
		pos = start + length + 4
	}
	return nil
}

// embeddedExif finds EXIF block the decoder does not reach by itself: PNG eXIf chunk,
// HEIF/AVIF Exif item, APP1 placed after other APP1 segments
func embeddedExif(data []byte) []byte {
	if bytes.HasPrefix(data, pngSignature) {
		if chunk := pngChunk(data, pngExifChunk); hasTiffHeader(chunk) || bytes.HasPrefix(chunk, exifHeader) {
			return chunk
		}
	}

	pos := 0
	for {
		i := bytes.Index(data[pos:], exifHeader)
		if i < 0 {
			return nil
		}
		start := pos + i
		if hasTiffHeader(data[start+len(exifHeader):]) {
			return data[start:]
		}
		pos = start + 1
	}
}

type exifWalker struct {
	fields Fields
}

func (w exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	value, ok := tagValue(tag)
	if !ok {
		return nil
	}
	w.fields.set(string(name), value)
	if alias, ok := exifAliases[name]; ok {
		w.fields.set(alias, value)
	}
	return nil
}

func tagValue(tag *tiff.Tag) (interface{}, bool) {
	switch tag.Format() {
	case tiff.StringVal:
		s, err := tag.StringVal()
		if err != nil {
			return nil, false
		}
		return s, true

	case tiff.IntVal:
		if tag.Count != 1 {
			return nil, false
		}
		v, err := tag.Int64(0)
		return v, err == nil

	case tiff.RatVal:
		if tag.Count != 1 {
			return nil, false
		}
		num, den, err := tag.Rat2(0)
		if err != nil || den == 0 {
			return nil, false
		}
		return float64(num) / float64(den), true

	case tiff.FloatVal:
		if tag.Count != 1 {
			return nil, false
		}
		v, err := tag.Float(0)
		return v, err == nil
	}

	return nil, false
}

// usableExif reports whether goexif returned data worth walking: non-critical errors come with
// a partial result, e.g. when only the GPS sub-IFD is broken
func usableExif(x *exif.Exif, err error) bool {
	return x != nil && (err == nil || !exif.IsCriticalError(err))
}

func decodeExif(data []byte) (*exif.Exif, error) {
	x, err := exif.Decode(bytes.NewReader(data))
	if usableExif(x, err) {
		return x, err
	}

	if block := embeddedExif(data); block != nil {
		if bx, berr := exif.Decode(bytes.NewReader(block)); usableExif(bx, berr) {
			return bx, berr
		}
	}
	return nil, err
}

// readExif returns fields along with a non-critical decode error when EXIF is damaged partially
func readExif(data []byte) (Fields, error) {
	x, err := decodeExif(data)
	if x == nil {
		return nil, err
	}

	fields := Fields{}
	if werr := x.Walk(exifWalker{fields: fields}); werr != nil {
		return nil, werr
	}

	if lat, long, llErr := x.LatLong(); llErr == nil {
		fields.set("latitude", lat)
		fields.set("longitude", long)
	}

	return fields, err
}
