package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/newsroom-backend/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Output goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(
		slog.String("app", "newsroom"),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler returns a JSON handler for format "json" and a text handler
// with source locations otherwise.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	opts.AddSource = true
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
