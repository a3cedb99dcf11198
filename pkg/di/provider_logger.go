package di

import (
	"io"
	"log/slog"

	"github.com/goliatone/repolink/pkg/config"
)

// provideLoggerWithConfig creates a logger configured from the logging config.
// Respects log level, format (text/json), verbose, and quiet settings.
func provideLoggerWithConfig(cfg *config.Config, out io.Writer) Logger {
	level := slog.LevelWarn
	format := "text"

	if cfg != nil {
		format = cfg.Logging.Format
		switch {
		case cfg.Logging.Quiet:
			level = slog.LevelError
		case cfg.Logging.Verbose:
			level = slog.LevelDebug
		default:
			level = parseLevel(cfg.Logging.Level)
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &slogAdapter{
		logger: slog.New(handler),
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// slogAdapter adapts slog.Logger to implement our Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (s *slogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *slogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *slogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *slogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}
