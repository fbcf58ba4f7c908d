package metadata

import (
	"fmt"
	"io"
	"os"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

// embedded metadata lives in the file header, large payloads are not read entirely
const maxHeaderSize = 16 << 20

// Result of metadata reading. Absent Fields mean "no metadata", Err tells why when it is known.
// Err next to Fields means some of the embedded metadata was damaged and skipped.
type Result struct {
	Fields Fields
	Err    error
}

// Found reports whether any metadata is available
func (r Result) Found() bool {
	return len(r.Fields) != 0
}

// Context derives item context, nil when nothing is known
func (r Result) Context() *model.Context {
	return Derive(r.Fields)
}

// Reader extracts embedded metadata from image files
type Reader struct {
	limit int64
}

// NewReader creates Reader
func NewReader() *Reader {
	return &Reader{limit: maxHeaderSize}
}

// Read never fails: unreadable or corrupt metadata is reported as Result without Fields
func (r *Reader) Read(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, r.limit))
	if err != nil {
		return Result{Err: err}
	}

	return Parse(data)
}

// Parse merges EXIF, XMP and IPTC fields; the first source to set a field wins
func Parse(data []byte) (result Result) {
	defer func() {
		if p := recover(); p != nil {
			result = Result{Err: fmt.Errorf("metadata parser panic: %v", p)}
		}
	}()

	fields := Fields{}
	var firstErr error

	exifFields, exifErr := readExif(data)
	if exifErr != nil {
		firstErr = fmt.Errorf("decode exif failed: %w", exifErr)
	}
	fields.merge(exifFields)

	xmpFields, err := readXmp(data)
	if err != nil && firstErr == nil {
		firstErr = fmt.Errorf("decode xmp failed: %w", err)
	}
	fields.merge(xmpFields)

	fields.merge(readIptc(data))

	if len(fields) == 0 {
		return Result{Err: firstErr}
	}
	if len(exifFields) != 0 && exifErr != nil {
		return Result{Fields: fields, Err: fmt.Errorf("exif decoded partially: %w", exifErr)}
	}
	return Result{Fields: fields}
}
