// Package logging configures the process-wide structured logger.
//
// Diagnostics always go to stderr: stdout is reserved for results, so piping
// them into another tool never mixes in log lines.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is the destination for log records. Nil means stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration for a normal run: warnings and
// errors only.
func DefaultConfig() Config {
	return Config{Level: "warn"}
}

// VerboseConfig returns the configuration for a --verbose run.
func VerboseConfig() Config {
	return Config{Level: "debug"}
}

// Setup builds a structured logger and installs it as the slog default.
func Setup(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString converts a string level to slog.Level.
func LevelFromString(level string) slog.Level {
	return parseLevel(level)
}
