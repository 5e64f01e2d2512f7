package app

import (
	"context"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/five82/animeshelf/internal/catalog"
	"github.com/five82/animeshelf/internal/config"
	"github.com/five82/animeshelf/internal/favorites"
	"github.com/five82/animeshelf/internal/kv"
	"github.com/five82/animeshelf/internal/logging"
	"github.com/five82/animeshelf/internal/prefs"
	"github.com/five82/animeshelf/internal/ui"
)

// Options configure the animeshelf application.
type Options struct {
	ConfigPath string // empty uses ~/.config/animeshelf/config.toml
}

// Env holds the long-lived dependencies shared by the TUI and the CLI
// subcommands.
type Env struct {
	Config    config.Config
	Logger    *zap.Logger
	Store     kv.Store
	Favorites *favorites.Store
}

// Open loads configuration and opens the logger and key-value store.
// Callers must Close the returned Env.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return nil, errors.Wrap(err, "init logging")
	}

	store, err := kv.Open(cfg.StorageBackend, cfg.StoragePath)
	if err != nil {
		_ = logger.Sync()
		return nil, errors.Wrapf(err, "open %s storage", cfg.StorageBackend)
	}

	return &Env{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Favorites: favorites.NewStore(store, logger),
	}, nil
}

// Close releases the store and flushes the logger.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	_ = e.Logger.Sync()
	if err := e.Store.Close(); err != nil {
		return errors.Wrap(err, "close storage")
	}
	return nil
}

// Run boots the animeshelf TUI until the user quits or ctx is cancelled.
// Quitting cancels any catalog request still in flight.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client, err := catalog.NewClient(env.Config.CatalogEndpoint)
	if err != nil {
		return errors.Wrap(err, "init catalog client")
	}

	env.Logger.Info("Starting animeshelf",
		zap.String("endpoint", client.Endpoint()),
		zap.String("storage", env.Config.StorageBackend),
	)

	userPrefs := prefs.Load(ctx, env.Store)

	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    catalog.NewLoader(client, env.Logger),
		Favorites: env.Favorites,
		Prefs:     env.Store,
		Logger:    env.Logger,
		ThemeName: userPrefs.Theme,
		LogPath:   env.Config.LogPath,
	})
}
