// Package logging builds the zap logger animeshelf writes diagnostics to.
// The terminal belongs to the TUI, so output always goes to a file.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select where and how verbosely to log.
type Options struct {
	Path  string // empty disables logging
	Level string // debug, info, warn, error; empty means info
}

// New returns a JSON logger appending to opts.Path. An empty path yields a
// no-op logger.
func New(opts Options) (*zap.Logger, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zap.NewNop(), nil
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": "animeshelf"}

	lg, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return lg, nil
}

func parseLevel(value string) (zapcore.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(value)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(err, "parse log level %q", value)
	}
	return level, nil
}
