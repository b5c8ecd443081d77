package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the snapshot blob in a single file under a data
// directory, one file per storage key. Saves go through a temp file
// plus rename so a crash mid-write never leaves a torn snapshot.
type FileStore struct {
	path string
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(dir string, cfg Config) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		path: filepath.Join(dir, cfg.Key()+".json"),
	}, nil
}

// Load returns the stored snapshot.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save overwrites the stored snapshot.
func (s *FileStore) Save(_ context.Context, data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Ping reports whether the data directory is writable.
func (s *FileStore) Ping(_ context.Context) error {
	f, err := os.OpenFile(filepath.Dir(s.path), os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	return f.Close()
}
