package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

type Config struct {
	// Pretty selects colored, human readable output instead of JSON.
	Pretty bool
	Level  string
	Output io.Writer
}

// New builds the application logger: tint for local development, JSON everywhere else.
// Records logged with a request context carry its request_id.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	level := ParseLevel(cfg.Level)

	if cfg.Pretty {
		return slog.New(contextHandler{tint.NewHandler(cfg.Output, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
			AddSource:  true,
		})})
	}
	return slog.New(contextHandler{slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})})
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
