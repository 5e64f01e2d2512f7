package kv

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a persistent key-value slot capability. Values are opaque bytes;
// each Set replaces the whole value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the store for the named backend. path is a directory for the
// file backend and a database file for sqlite; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Errorf("unknown storage backend %q", backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key is empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return errors.Errorf("invalid key %q", key)
	}
	return nil
}
