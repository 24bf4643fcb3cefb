package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mserradell/clinica_backend/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger from config, supporting multi-output fan-out.
// The interactive menu owns stdout, so terminal logging goes to
// stderr and defaults to off in favor of the rotated file.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)

	var writers []io.Writer

	if cfg.Logging.Output.Stderr || !cfg.Logging.Output.File.Enabled {
		writers = append(writers, os.Stderr)
	}

	// File output with rotation via lumberjack
	if cfg.Logging.Output.File.Enabled {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Logging.Output.File.Path,
			MaxSize:    cfg.Logging.Output.File.MaxSizeMB,
			MaxBackups: cfg.Logging.Output.File.MaxBackups,
			MaxAge:     cfg.Logging.Output.File.MaxAgeDays,
			Compress:   cfg.Logging.Output.File.Compress,
		})
	}

	var handlers []slog.Handler
	for _, w := range writers {
		opts := &slog.HandlerOptions{Level: level}
		if strings.EqualFold(cfg.Logging.Format, "json") {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = &multiHandler{handlers: handlers}
	}

	return slog.New(h).With(
		slog.String("service", "clinica_backend"),
	)
}

func Default() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With(slog.String("service", "clinica_backend"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
