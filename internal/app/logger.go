package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/config"
)

const serviceName = "todo-backend"

// NewLogger builds the process logger, writing to stderr, and installs it as
// the slog default. Every record carries service=todo-backend.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger emits JSON when format is "json" and text with source locations
// otherwise. An unknown level logs at info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	}

	return slog.New(h).With(slog.String("service", serviceName))
}
