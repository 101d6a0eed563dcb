package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrFileAlreadyExists is returned by OpenFile when path already names an
// existing file.
var ErrFileAlreadyExists = errors.New("backend: file already exists")

// InvalidPathError reports that path cannot be used to create a storage
// file: it names a directory, or its parent directory does not exist.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("backend: invalid path %q: %s", e.Path, e.Reason)
}

// File is a Backend backed by a real file on disk.
type File struct {
	f *os.File
}

// OpenFile creates a new storage file at path, rejecting a path that is
// already a directory, then one that already exists as a file, then one
// whose parent directory is missing.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, &InvalidPathError{Path: path, Reason: "path is empty"}
	}
	if stat, err := os.Stat(path); err == nil && stat.IsDir() {
		return nil, &InvalidPathError{Path: path, Reason: "path is a directory"}
	}
	if _, err := os.Stat(path); err == nil {
		return nil, ErrFileAlreadyExists
	}
	parent := filepath.Dir(path)
	if stat, err := os.Stat(parent); err != nil || !stat.IsDir() {
		return nil, &InvalidPathError{Path: path, Reason: "parent directory does not exist"}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("backend: creating %q: %w", path, err)
	}
	return &File{f: f}, nil
}

func (b *File) Read(p []byte) (int, error)                    { return b.f.Read(p) }
func (b *File) Write(p []byte) (int, error)                   { return b.f.Write(p) }
func (b *File) Seek(offset int64, whence int) (int64, error)  { return b.f.Seek(offset, whence) }
func (b *File) Close() error                                  { return b.f.Close() }
