package storage

import (
	"io"
	"os"
)

// FileSystem is a set of write operations the Manager performs
type FileSystem interface {
	RemoveAll(path string) error
	MkdirAll(path string, perm os.FileMode) error
	Copy(src, dst string) error
	WriteFile(name string, data []byte, perm os.FileMode) error
	Rename(oldPath, newPath string) error
	Remove(name string) error
}

type osFileSystem struct{}

func (osFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFileSystem) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerms)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (osFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (osFileSystem) Remove(name string) error {
	return os.Remove(name)
}
