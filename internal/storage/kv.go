// Package storage persists the application state as a single serialized blob
// in a key-value store.
//
// Two backends are available: FileKV keeps one JSON file per key and replaces
// it atomically, SQLiteKV keeps the blobs in a kv_store table.
package storage

import (
	"errors"
	"fmt"

	"github.com/studiowebux/flashcli/internal/config"
)

// ErrNotFound is returned by KV.Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value store for serialized blobs
type KV interface {
	// Get returns the blob stored under key, or ErrNotFound
	Get(key string) ([]byte, error)
	// Set overwrites the blob stored under key
	Set(key string, value []byte) error
	// Close releases any resources held by the store
	Close() error
}

// Open returns the backend selected in the settings
func Open(settings config.Settings) (KV, error) {
	switch settings.Storage.Backend {
	case config.BackendSQLite:
		return NewSQLiteKV(config.DatabasePath)
	case config.BackendFile, "":
		return NewFileKV(config.StoreDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", settings.Storage.Backend)
	}
}
