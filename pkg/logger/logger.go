package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/devraulu/wordlegen/pkg/config"
)

// LevelCritical sits above slog.LevelError and is used for abort messages.
const LevelCritical = slog.Level(12)

func InitLogger(cfg *config.Config) *slog.Logger {
	logger := New(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func New(cfg *config.Config, w io.Writer) *slog.Logger {
	if cfg.Logging.Silent {
		return slog.New(discardHandler{})
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Logging.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				// Only use bunyan levels if JSON
				if cfg.Logging.Format != "text" {
					return slog.Int(a.Key, bunyanLevel(level))
				}
				if level >= LevelCritical {
					return slog.String(a.Key, "CRITICAL")
				}
			}
			return a
		},
	}

	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		"name", "wordlegen",
		"pid", os.Getpid(),
		"hostname", hostname,
	)
}

// Critical logs msg at LevelCritical.
func Critical(l *slog.Logger, msg string, args ...any) {
	l.Log(context.Background(), LevelCritical, msg, args...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func bunyanLevel(level slog.Level) int {
	switch {
	case level >= LevelCritical:
		return 60
	case level >= slog.LevelError:
		return 50
	case level >= slog.LevelWarn:
		return 40
	case level >= slog.LevelInfo:
		return 30
	case level >= slog.LevelDebug:
		return 20
	default:
		return 10
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h discardHandler) WithGroup(string) slog.Handler { return h }
