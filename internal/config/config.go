package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything animeshelf reads from config.toml.
type Config struct {
	CatalogEndpoint string
	StorageBackend  string
	StoragePath     string
	LogPath         string
	LogLevel        string
}

const (
	defaultConfigPath      = "~/.config/animeshelf/config.toml"
	defaultCatalogEndpoint = "https://api.jikan.moe/v4/anime"
	defaultStorageBackend  = "file"
	defaultStorageDir      = "~/.local/share/animeshelf"
	defaultSQLiteFile      = "animeshelf.db"
	defaultLogPath         = "~/.local/state/animeshelf/animeshelf.log"
	defaultLogLevel        = "info"
)

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses config.toml, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finalize(rawConfig{})
		}
		return Config{}, errors.Wrap(err, "open config")
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return finalize(raw)
}

type rawConfig struct {
	Catalog struct {
		Endpoint string `toml:"endpoint"`
	} `toml:"catalog"`
	Storage struct {
		Backend string `toml:"backend"`
		Path    string `toml:"path"`
	} `toml:"storage"`
	Log struct {
		Path  string `toml:"path"`
		Level string `toml:"level"`
	} `toml:"log"`
}

func finalize(raw rawConfig) (Config, error) {
	cfg := Config{
		CatalogEndpoint: orDefault(raw.Catalog.Endpoint, defaultCatalogEndpoint),
		StorageBackend:  strings.ToLower(orDefault(raw.Storage.Backend, defaultStorageBackend)),
		LogLevel:        strings.ToLower(orDefault(raw.Log.Level, defaultLogLevel)),
	}

	switch cfg.StorageBackend {
	case "file", "memory":
		cfg.StoragePath = mustExpand(orDefault(raw.Storage.Path, defaultStorageDir))
	case "sqlite":
		path := strings.TrimSpace(raw.Storage.Path)
		if path == "" {
			path = defaultStorageDir + "/" + defaultSQLiteFile
		}
		cfg.StoragePath = mustExpand(path)
	default:
		return Config{}, errors.Errorf("unknown storage backend %q", raw.Storage.Backend)
	}

	// "off" keeps logging disabled; blank means the default file.
	switch logPath := strings.TrimSpace(raw.Log.Path); logPath {
	case "off":
		cfg.LogPath = ""
	case "":
		cfg.LogPath = mustExpand(defaultLogPath)
	default:
		cfg.LogPath = mustExpand(logPath)
	}
	return cfg, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
