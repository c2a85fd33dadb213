package logger

import (
	"log/slog"
	"strings"
)

// Config holds the logger settings that live under [logger] in the config file.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the output log file. Empty means the default path; "-"
	// means stderr.
	LogFilePath string `toml:"log_file"`
}

// Level parses LogLevel, defaulting to info for anything unrecognized.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
