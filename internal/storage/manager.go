package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
)

const mediaPerms = 0755
const filePerms = 0644

// Manager is responsible for the public media tree and the generated manifest module
type Manager struct {
	out   config.Output
	fs    FileSystem
	retry retryPolicy
}

// NewManager creates Manager over the local file system
func NewManager(out config.Output, retry config.Retry) *Manager {
	return &Manager{
		out:   out,
		fs:    osFileSystem{},
		retry: newRetryPolicy(retry),
	}
}

// Reset removes the whole public tree and recreates it empty
func (m *Manager) Reset() error {
	err := m.retry.do(func() error {
		return m.fs.RemoveAll(m.out.Public)
	})
	if err != nil {
		return fmt.Errorf("remove public directory failed: %w", err)
	}

	if err = m.fs.MkdirAll(m.out.Public, mediaPerms); err != nil {
		return fmt.Errorf("create public directory failed: %w", err)
	}
	return nil
}

// CreateFolder creates output directory of the folder
func (m *Manager) CreateFolder(folder model.ID) error {
	dir := m.folderDirectory(folder)
	if err := m.fs.MkdirAll(dir, mediaPerms); err != nil {
		return fmt.Errorf("create folder directory '%s' failed: %w", dir, err)
	}
	return nil
}

// StoreMedia copies source file into the folder directory under fileName
func (m *Manager) StoreMedia(sourcePath string, folder model.ID, fileName string) error {
	target := filepath.Join(m.folderDirectory(folder), fileName)
	if err := m.fs.Copy(sourcePath, target); err != nil {
		return fmt.Errorf("copy '%s' failed: %w", sourcePath, err)
	}
	return nil
}

// PublicPath returns URL path of the stored media file
func (m *Manager) PublicPath(folder model.ID, fileName string) string {
	return composePublicPath(m.out.PublicPrefix, folder, fileName)
}

// WriteManifest replaces the generated module with the manifest
func (m *Manager) WriteManifest(manifest model.Manifest, generatedAt time.Time) error {
	content, err := renderModule(m.out, manifest, generatedAt)
	if err != nil {
		return fmt.Errorf("render manifest failed: %w", err)
	}

	if err = m.fs.MkdirAll(filepath.Dir(m.out.Manifest), mediaPerms); err != nil {
		return fmt.Errorf("create manifest directory failed: %w", err)
	}

	if err = writeAtomic(m.fs, m.out.Manifest, content); err != nil {
		return fmt.Errorf("write manifest failed: %w", err)
	}
	return nil
}
