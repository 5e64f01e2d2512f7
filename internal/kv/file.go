package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// File keeps one file per key inside a directory.
type File struct {
	dir string
}

var _ Store = (*File)(nil)

// OpenFile prepares dir, creating it when missing.
func OpenFile(dir string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage path is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &File{dir: dir}, nil
}

// Dir returns the backing directory.
func (f *File) Dir() string {
	return f.dir
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "read %s", key)
	}
	return data, nil
}

// Set writes to a temp file in the same directory and renames it over the
// key, so readers never observe a partial value.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, "."+key+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create temp for %s", key)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close temp for %s", key)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return errors.Wrapf(err, "replace %s", key)
	}
	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "delete %s", key)
	}
	return nil
}

func (f *File) Close() error { return nil }

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key)
}
