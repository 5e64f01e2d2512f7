package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/animeshelf/internal/kv"
)

func TestLoad_MissingReturnsDefaults(t *testing.T) {
	store := kv.NewMemory()

	p := Load(context.Background(), store)
	assert.Equal(t, DefaultTheme, p.Theme)
}

func TestLoad_NilStoreReturnsDefaults(t *testing.T) {
	p := Load(context.Background(), nil)
	assert.Equal(t, DefaultTheme, p.Theme)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, err := kv.OpenFile(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, Save(ctx, store, Prefs{Theme: "Kanagawa"}))

	raw, err := store.Get(ctx, Key)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Kanagawa")

	assert.Equal(t, "Kanagawa", Load(ctx, store).Theme)
}

func TestLoad_InvalidTOMLReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, Key, []byte("theme = [broken")))

	assert.Equal(t, DefaultTheme, Load(ctx, store).Theme)
}

func TestLoad_EmptyThemeReturnsDefault(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, Key, []byte(`theme = "   "`)))

	assert.Equal(t, DefaultTheme, Load(ctx, store).Theme)
}

func TestSave_NilStoreFails(t *testing.T) {
	require.Error(t, Save(context.Background(), nil, Prefs{Theme: "Slate"}))
}
