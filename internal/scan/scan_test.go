package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalSort(t *testing.T) {
	testCases := []struct {
		input  []string
		output []string
	}{
		{
			input:  []string{"img10.jpg", "img2.jpg", "img1.jpg"},
			output: []string{"img1.jpg", "img2.jpg", "img10.jpg"},
		},
		{
			input:  []string{"Zoo", "apple", "Éclair", "banana"},
			output: []string{"apple", "banana", "Éclair", "Zoo"},
		},
		{
			input:  []string{"paris", "Paris"},
			output: []string{"Paris", "paris"},
		},
		{
			input:  []string{"2023 Summer", "2022 Winter", "10 Dates", "9 Dates"},
			output: []string{"9 Dates", "10 Dates", "2022 Winter", "2023 Summer"},
		},
	}

	for i, tc := range testCases {
		NaturalSort(tc.input)
		assert.Equal(t, tc.output, tc.input, "Test %d failed", i)
	}
}

func TestScan(t *testing.T) {
	source := fstest.MapFS{
		"Paris/img10.jpg":         {Data: []byte("x")},
		"Paris/img2.JPG":          {Data: []byte("x")},
		"Paris/.hidden.jpg":       {Data: []byte("x")},
		"Paris/notes.txt":         {Data: []byte("x")},
		"Paris/nested/deep.jpg":   {Data: []byte("x")},
		"Paris/clip.mov":          {Data: []byte("x")},
		"Empty/readme.md":         {Data: []byte("x")},
		"Nothing":                 {Mode: fs.ModeDir},
		"loose.jpg":               {Data: []byte("x")},
		"10 Anniversary/a.webm":   {Data: []byte("x")},
		"2 First date/photo.heic": {Data: []byte("x")},
		"2 First date/link.jpg":   {Data: []byte("x"), Mode: fs.ModeSymlink},
	}

	listing, err := Scan(source)
	require.NoError(t, err)
	assert.True(t, listing.Found)

	expected := []Folder{
		{Name: "2 First date", Files: []string{"photo.heic"}},
		{Name: "10 Anniversary", Files: []string{"a.webm"}},
		{Name: "Paris", Files: []string{"clip.mov", "img2.JPG", "img10.jpg"}},
	}
	assert.Equal(t, expected, listing.Folders)
}

func TestScanMissingRoot(t *testing.T) {
	listing, err := Scan(os.DirFS(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.False(t, listing.Found)
	assert.Empty(t, listing.Folders)
}

func TestScanRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Memories")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	listing, err := Scan(os.DirFS(root))
	require.NoError(t, err)
	assert.False(t, listing.Found)
	assert.Empty(t, listing.Folders)
}
