package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"route-service-fleetsync/internal/logx"
)

// NewLogger returns a JSON logger writing to stdout at the given level.
func NewLogger(level string) logx.Logger {
	return newLoggerTo(os.Stdout, level)
}

func newLoggerTo(w io.Writer, level string) logx.Logger {
	base := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	return logx.NewSlogAdapter(base)
}

// unknown levels fall back to info
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
