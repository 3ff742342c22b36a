// Package logging builds the file-backed zap logger used by the console.
// The interactive UI owns the terminal, so logs go to the data directory.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"crewdesk/internal/config"
)

// New returns a production zap logger writing to the configured file. Callers
// should defer logger.Sync().
func New(cfg config.Config) (*zap.Logger, error) {
	path, err := cfg.LogFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zapcore.InfoLevel
	if cfg.Logging.Level != "" {
		if err := level.Set(cfg.Logging.Level); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// NewOrNop returns a working logger or a nop one; the console never refuses
// to start because the log file is unavailable.
func NewOrNop(cfg config.Config) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
