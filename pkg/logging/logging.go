// Package logging provides structured logging for the rollcall system
// using zerolog. It produces human-readable console output when attached
// to a terminal and structured JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("file", "01.2568.xlsx").Int("records", 152).Msg("Extracted month")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

// Nop is a logger that discards everything; handy in tests.
var Nop = zerolog.Nop()

func init() {
	defaultLogger = NewLoggerFromConfig(DefaultConfig())
}

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output.
	Level string

	// Format is the output format (json, console, auto).
	Format string

	// Output is where to write logs (stderr, stdout, discard).
	Output string

	// NoColor disables color output in console mode.
	NoColor bool

	// AddCaller includes file:line in log output.
	AddCaller bool
}

// DefaultConfig returns a configuration driven by environment variables
// with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Level:   getEnvOrDefault("LOG_LEVEL", "info"),
		Format:  getEnvOrDefault("LOG_FORMAT", "auto"),
		Output:  getEnvOrDefault("LOG_OUTPUT", "stderr"),
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a new logger from configuration.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writerFor(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Configure updates the default logger with the given configuration.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// New creates a new logger with the given writer.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// writerFor selects the destination and format for a configuration.
func writerFor(cfg *Config) io.Writer {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "discard", "none":
		output = io.Discard
	default:
		output = os.Stderr
	}

	format := strings.ToLower(cfg.Format)
	if format == "auto" {
		if f, ok := output.(*os.File); ok && isTerminal(f) {
			format = "console"
		} else {
			format = "json"
		}
	}

	if format == "console" {
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}
	return output
}

// isTerminal checks whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
