package config

import (
	"log/slog"
	"strings"
	"time"
)

// Config is the root configuration for the tool and its front-ends.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Tool   ToolConfig   `yaml:"tool"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds warframe.market API settings.
type APIConfig struct {
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	RequestLimit  int           `yaml:"request_limit"`  // Requests per window (ToS: 3/s)
	RequestWindow time.Duration `yaml:"request_window"` // Rate-limit window
	RetryBackoff  time.Duration `yaml:"retry_backoff"`  // Sleep between denied admits
}

// ToolConfig holds pipeline settings.
type ToolConfig struct {
	DefaultFloorCount int `yaml:"default_floor_count"`
	VerifyConcurrency int `yaml:"verify_concurrency"`
}

// ServerConfig holds HTTP front-end settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level     string `yaml:"level"` // debug, info, warn, error
	AddSource bool   `yaml:"add_source"`
}

// SlogLevel maps the configured level name to a slog.Level. Unknown or
// empty names fall back to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
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
