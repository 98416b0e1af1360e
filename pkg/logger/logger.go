package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates the bootstrap logger from environment variables. It exists
// so startup errors before configuration is loaded still get structured
// output; once config is available, FromConfig builds the real logger.
func New() zerolog.Logger {
	format := os.Getenv("LOG_FORMAT")
	if format == "" && os.Getenv("ENV") == "development" {
		format = "pretty"
	}
	return FromConfig(os.Getenv("LOG_LEVEL"), format)
}

// FromConfig creates a zerolog logger with the given level and output
// format ("json" or "pretty")
func FromConfig(level, format string) zerolog.Logger {
	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339

	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	// Pretty console output for development
	if format == "pretty" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Str("service", "blog-platform-api").
			Logger()
	}

	// JSON output for production
	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "blog-platform-api").
		Logger()
}
