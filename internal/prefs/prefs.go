// Package prefs handles animeshelf user preferences persistence.
// Preferences are stored as TOML in the "prefs" slot of the key-value store.
package prefs

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/animeshelf/internal/kv"
)

// Key is the storage slot holding the preferences document.
const Key = "prefs"

// DefaultTheme is used when no theme has been saved.
const DefaultTheme = "Nightfox"

// Prefs holds user preferences for animeshelf.
type Prefs struct {
	Theme string `toml:"theme"`
}

// Load reads preferences from store, falling back to defaults if missing.
func Load(ctx context.Context, store kv.Store) Prefs {
	prefs := Prefs{Theme: DefaultTheme}
	if store == nil {
		return prefs
	}

	data, err := store.Get(ctx, Key)
	if err != nil {
		return prefs // Graceful degradation
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Prefs{Theme: DefaultTheme} // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = DefaultTheme
	}
	return prefs
}

// Save writes preferences to store.
func Save(ctx context.Context, store kv.Store, p Prefs) error {
	if store == nil {
		return errors.New("prefs store is nil")
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal prefs")
	}

	if err := store.Set(ctx, Key, data); err != nil {
		return errors.Wrap(err, "write prefs")
	}
	return nil
}
