package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/flashcli/internal/config"
)

// FileKV stores each key as <dir>/<key>.json
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed store rooted at dir
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

// Get reads the file for key
func (f *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value to a temporary file and renames it over the key's file,
// so a failed write never leaves a truncated blob behind.
func (f *FileKV) Set(key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}

	return nil
}

// Close is a no-op for the file backend
func (f *FileKV) Close() error {
	return nil
}

// path maps a key to a file name inside the store directory
func (f *FileKV) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(f.dir, safe+".json")
}
