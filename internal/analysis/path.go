package analysis

import (
	"path/filepath"
	"strings"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

var imageExtensions = []string{
	"jpg", "jpeg", "png", "webp", "gif", "avif", "heic", "heif",
}

var videoExtensions = []string{
	"mp4", "mov", "m4v", "webm",
}

type fileLayout struct {
	FileName  string
	Extension string
}

func extractLayout(file string) fileLayout {
	result := fileLayout{}

	_, fileName := filepath.Split(file)
	ext := filepath.Ext(fileName)
	result.FileName = strings.TrimSuffix(fileName, ext)
	result.Extension = strings.TrimPrefix(ext, ".")

	return result
}

func (l fileLayout) IsVideoFile() bool {
	return contains(videoExtensions, strings.ToLower(l.Extension))
}

func (l fileLayout) IsImageFile() bool {
	return contains(imageExtensions, strings.ToLower(l.Extension))
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// IsSupported reports whether file is a visible image or video
func IsSupported(fileName string) bool {
	if strings.HasPrefix(fileName, ".") {
		return false
	}
	l := extractLayout(fileName)
	return l.IsImageFile() || l.IsVideoFile()
}

// MediaType classifies file by extension only
func MediaType(fileName string) model.MediaType {
	if extractLayout(fileName).IsVideoFile() {
		return model.MediaTypeVideo
	}
	return model.MediaTypeImage
}

// BaseName returns file name without extension
func BaseName(fileName string) string {
	return extractLayout(fileName).FileName
}

// Extension returns lower-cased extension with leading dot or empty string
func Extension(fileName string) string {
	ext := extractLayout(fileName).Extension
	if ext == "" {
		return ""
	}
	return "." + strings.ToLower(ext)
}
