package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the blob as the contents of a single file, the default
// adapter for `calc run`. Writes go through a temp file plus rename so a
// crash mid-write never leaves a half-written blob in place.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path. The parent
// directory is created on first Write if it doesn't already exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Read returns the file's contents, or an empty slice if the file doesn't
// exist yet.
func (f *FileStore) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Write atomically replaces the file's contents via a temp file + rename.
func (f *FileStore) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename state file: %w", err)
	}
	return nil
}
