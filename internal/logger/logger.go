// Package logger provides structured logging using zerolog.
// It supports console and JSON output with a configurable level.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Format is the output format (console, json).
	Format string

	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// DefaultConfig returns the configuration used when nothing is set:
// warnings and errors only, so calculations print just their result.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
	}
}

// Logger wraps zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stderr.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput creates a Logger with a custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	def := DefaultConfig()
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level, _ = zerolog.ParseLevel(def.Level)
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}

	var writer io.Writer = output
	if cfg.Format != FormatJSON {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}

	return &Logger{
		Logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str(key, value).Logger(),
	}
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}
