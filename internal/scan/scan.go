// Package scan lists source folders and their supported media files
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/RacoonMediaServer/rms-memories/internal/analysis"
)

// Folder is a top-level source directory with supported files in natural order
type Folder struct {
	Name  string
	Files []string
}

// Listing is a result of scanning source root
type Listing struct {
	// Found is false when source root does not exist or is not a directory
	Found   bool
	Folders []Folder
}

// Scan walks source root one level deep. Folders without supported files are skipped.
func Scan(source fs.FS) (Listing, error) {
	result := Listing{}

	info, err := fs.Stat(source, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return result, nil
		}
		return result, fmt.Errorf("stat source root failed: %w", err)
	}
	if !info.IsDir() {
		return result, nil
	}
	result.Found = true

	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return result, fmt.Errorf("read source root failed: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	NaturalSort(names)

	for _, name := range names {
		files, err := listFiles(source, name)
		if err != nil {
			return result, err
		}
		if len(files) == 0 {
			continue
		}
		result.Folders = append(result.Folders, Folder{Name: name, Files: files})
	}

	return result, nil
}

func listFiles(source fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(source, dir)
	if err != nil {
		return nil, fmt.Errorf("read folder '%s' failed: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && analysis.IsSupported(e.Name()) {
			files = append(files, e.Name())
		}
	}
	NaturalSort(files)
	return files, nil
}
