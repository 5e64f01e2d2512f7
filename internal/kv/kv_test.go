package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := OpenFile(filepath.Join(t.TempDir(), "slots"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "animeshelf.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		BackendMemory: NewMemory(),
		BackendFile:   fileStore,
		BackendSQLite: sqliteStore,
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "user")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"u1"}`)))
			got, err := store.Get(ctx, "user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"u1"}`, string(got))

			require.NoError(t, store.Set(ctx, "user", []byte(`{"id":"u2"}`)))
			got, err = store.Get(ctx, "user")
			require.NoError(t, err)
			assert.Equal(t, `{"id":"u2"}`, string(got), "Set must replace the whole value")

			require.NoError(t, store.Delete(ctx, "user"))
			_, err = store.Get(ctx, "user")
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Delete(ctx, "user"), "deleting an absent key succeeds")
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, "user", []byte("a")))
			require.NoError(t, store.Set(ctx, "prefs", []byte("b")))

			user, err := store.Get(ctx, "user")
			require.NoError(t, err)
			prefs, err := store.Get(ctx, "prefs")
			require.NoError(t, err)
			assert.Equal(t, "a", string(user))
			assert.Equal(t, "b", string(prefs))
		})
	}
}

func TestStore_RejectsInvalidKeys(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "  ", "a/b", `a\b`, "..", "."} {
				assert.Error(t, store.Set(ctx, key, []byte("x")), "key %q", key)
				_, err := store.Get(ctx, key)
				assert.Error(t, err, "key %q", key)
			}
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'z'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemory_WritesCountsMutations(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	assert.Equal(t, 0, m.Writes())

	require.NoError(t, m.Set(ctx, "k", []byte("1")))
	require.NoError(t, m.Delete(ctx, "missing"))
	require.NoError(t, m.Delete(ctx, "k"))
	assert.Equal(t, 2, m.Writes())
}

func TestFile_SetLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slots")
	f, err := OpenFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(context.Background(), "user", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user", entries[0].Name())
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "animeshelf.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", []byte("persisted")))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("", filepath.Join(dir, "files"))
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(" SQLite ", filepath.Join(dir, "kv.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	s, err = Open("memory", "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open("redis", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestFile_CancelledContext(t *testing.T) {
	f, err := OpenFile(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = f.Set(ctx, "user", []byte("x"))
	assert.True(t, errors.Is(err, context.Canceled))
}
