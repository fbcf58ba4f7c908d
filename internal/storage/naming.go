package storage

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

// ComposeFileName makes output file name from file identifier and the original extension
func ComposeFileName(file model.ID, ext string) string {
	return file.String() + strings.ToLower(ext)
}

func composePublicPath(prefix string, folder model.ID, fileName string) string {
	return path.Join("/", prefix, folder.String(), fileName)
}

func (m *Manager) folderDirectory(folder model.ID) string {
	return filepath.Join(m.out.Public, folder.String())
}
