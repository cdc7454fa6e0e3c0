// Package logging routes structured logs to a debug file, since the terminal
// belongs to the TUI while it runs.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hy4ri/weekdaytab/internal/config"
)

// FileName is the log file created in the config directory when no path is configured.
const FileName = "debug.log"

// Log keys shared across packages.
const (
	KeyComponent = "component"
	KeyError     = "error"
	KeyKey       = "key"
)

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at the configured level.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
}

// Setup opens the log file, installs the logger as the slog default, and
// returns a function that closes the file.
func Setup(cfg config.LogConfig) (func() error, error) {
	path := cfg.File
	if path == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, FileName)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(New(f, cfg))
	return f.Close, nil
}
