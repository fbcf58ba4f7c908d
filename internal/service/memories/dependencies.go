package memories

import (
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/metadata"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

// MetadataReader extracts embedded metadata of an image file. It must not fail the pipeline.
type MetadataReader interface {
	Read(path string) metadata.Result
}

// DirectoryManager materializes the public media tree and the manifest module
type DirectoryManager interface {
	Reset() error
	CreateFolder(folder model.ID) error
	StoreMedia(sourcePath string, folder model.ID, fileName string) error
	PublicPath(folder model.ID, fileName string) string
	WriteManifest(manifest model.Manifest, generatedAt time.Time) error
}
