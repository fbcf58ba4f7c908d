package analysis

import (
	"testing"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestExtractLayout(t *testing.T) {
	type testCase struct {
		input  string
		output fileLayout
	}

	testCases := []testCase{
		{
			input: "somefile",
			output: fileLayout{
				FileName: "somefile",
			},
		},
		{
			input: "movie.mp4",
			output: fileLayout{
				FileName:  "movie",
				Extension: "mp4",
			},
		},
		{
			input: "Paris/IMG_0001.JPG",
			output: fileLayout{
				FileName:  "IMG_0001",
				Extension: "JPG",
			},
		},
		{
			input: "beach.trip.heic",
			output: fileLayout{
				FileName:  "beach.trip",
				Extension: "heic",
			},
		},
		{
			input: ".DS_Store",
			output: fileLayout{
				FileName:  "",
				Extension: "DS_Store",
			},
		},
	}

	for i, tc := range testCases {
		actual := extractLayout(tc.input)
		assert.Equal(t, tc.output, actual, "Test %d failed", i)
	}
}

func TestIsSupported(t *testing.T) {
	testCases := []struct {
		input     string
		supported bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.png", true},
		{"a.webp", true},
		{"a.gif", true},
		{"a.avif", true},
		{"a.HEIC", true},
		{"a.heif", true},
		{"a.mp4", true},
		{"a.MOV", true},
		{"a.m4v", true},
		{"a.webm", true},
		{"a.txt", false},
		{"a.mkv", false},
		{"noext", false},
		{".hidden.jpg", false},
		{"._IMG_0001.JPG", false},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.supported, IsSupported(tc.input), "Test %d failed", i)
	}
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, model.MediaTypeVideo, MediaType("clip.MOV"))
	assert.Equal(t, model.MediaTypeVideo, MediaType("clip.webm"))
	assert.Equal(t, model.MediaTypeImage, MediaType("photo.jpg"))
	assert.Equal(t, model.MediaTypeImage, MediaType("photo.heic"))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", Extension("IMG.JPG"))
	assert.Equal(t, ".mp4", Extension("clip.Mp4"))
	assert.Equal(t, "", Extension("noext"))
	assert.Equal(t, "IMG_0001", BaseName("IMG_0001.JPG"))
}
