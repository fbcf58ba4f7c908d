package memories

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/metadata"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/RacoonMediaServer/rms-memories/internal/scan"
	"go-micro.dev/v4/logger"
)

// Service synchronizes source media folders into the public tree and the manifest
type Service struct {
	root   string
	source fs.FS
	meta   MetadataReader
	dir    DirectoryManager
	now    func() time.Time
}

// Settings holds all dependencies of service
type Settings struct {
	// SourceRoot is a directory with user media folders
	SourceRoot string

	// Source overrides file system the folders are listed from, os.DirFS(SourceRoot) by default.
	// Without both the source is treated as missing.
	Source fs.FS

	Metadata         MetadataReader
	DirectoryManager DirectoryManager

	// Clock is used for the manifest generation timestamp, time.Now by default
	Clock func() time.Time
}

// Report describes a result of one run
type Report struct {
	// SourceFound is false when source root is missing, the manifest is empty then
	SourceFound bool

	Manifest model.Manifest
}

func NewService(settings Settings) *Service {
	s := &Service{
		root:   settings.SourceRoot,
		source: settings.Source,
		meta:   settings.Metadata,
		dir:    settings.DirectoryManager,
		now:    settings.Clock,
	}
	if s.source == nil && s.root != "" {
		s.source = os.DirFS(s.root)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.meta == nil {
		s.meta = metadata.NewReader()
	}
	return s
}

func (s *Service) list() (scan.Listing, error) {
	if s.source == nil {
		return scan.Listing{}, nil
	}
	return scan.Scan(s.source)
}

// Plan computes the manifest without touching output
func (s *Service) Plan() (Report, error) {
	listing, err := s.list()
	if err != nil {
		return Report{}, fmt.Errorf("scan source failed: %w", err)
	}

	folders := s.plan(listing)
	return Report{SourceFound: listing.Found, Manifest: manifestOf(folders)}, nil
}

// Sync replaces the public tree and the manifest module with current source content
func (s *Service) Sync() (Report, error) {
	listing, err := s.list()
	if err != nil {
		return Report{}, fmt.Errorf("scan source failed: %w", err)
	}

	if err = s.dir.Reset(); err != nil {
		return Report{}, err
	}

	folders := s.plan(listing)
	for i := range folders {
		if err = s.materialize(&folders[i]); err != nil {
			return Report{}, err
		}
	}

	manifest := manifestOf(folders)
	if err = s.dir.WriteManifest(manifest, s.now()); err != nil {
		return Report{}, err
	}

	return Report{SourceFound: listing.Found, Manifest: manifest}, nil
}

func (s *Service) materialize(pf *plannedFolder) error {
	if err := s.dir.CreateFolder(pf.folder.ID); err != nil {
		return err
	}
	for _, pi := range pf.items {
		if err := s.dir.StoreMedia(pi.sourcePath, pf.folder.ID, pi.fileName); err != nil {
			return err
		}
	}
	logger.Debugf("Folder '%s' stored as %s, %d items", pf.folder.Title, pf.folder.ID, pf.folder.Count)
	return nil
}

func manifestOf(folders []plannedFolder) model.Manifest {
	manifest := make(model.Manifest, 0, len(folders))
	for i := range folders {
		manifest = append(manifest, folders[i].folder)
	}
	return manifest
}
