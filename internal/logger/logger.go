package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"comissiona/internal/config"
)

// New creates the process logger. JSON output by default, pretty console
// output when running with ENV=development.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var level zerolog.Level
	switch cfg.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	if cfg.Env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Str("service", "comissiona").
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "comissiona").
		Logger()
}
