package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore keeps one file per key inside a directory.
type FileStore struct {
	dir string
}

// BaseDir returns the default data directory (~/.gym).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".gym"), nil
}

// NewFileStore returns a store rooted at dir, or at BaseDir()/data when dir is empty.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := BaseDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "data")
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the key files.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) keyPath(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("storage error: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get reads the file for key. A missing file means the key is absent.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the file for key. The value is written to a
// sibling temp file which is then renamed over the old one.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("storage error writing %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage error writing %s: %w", key, err)
	}
	_, err = tmp.WriteString(value)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("storage error writing %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }
