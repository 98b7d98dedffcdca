// Package config resolves grepr's ambient settings: logging, color and output
// format. Values come from defaults, then GREPR_* environment variables, then
// command-line flags, each layer overriding the one before.
package config

import (
	"strings"

	"github.com/harrison/grepr/internal/display"
	"github.com/harrison/grepr/internal/logger"
)

// Environment variables read by LoadFromEnv
const (
	EnvLogLevel = "GREPR_LOG_LEVEL"
	EnvLogFile  = "GREPR_LOG_FILE"
	EnvColor    = "GREPR_COLOR"
	EnvFormat   = "GREPR_FORMAT"
)

// Config holds settings that shape how a search is reported, never what it finds
type Config struct {
	// LogLevel is the minimum level written by the loggers
	LogLevel string

	// LogFile, when set, receives a copy of every log record
	LogFile string

	// Color is auto, always or never
	Color string

	// Format is text, json or yaml
	Format string
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: logger.DefaultLevel,
		LogFile:  "",
		Color:    display.ColorAuto,
		Format:   display.FormatText,
	}
}

// LoadFromEnv returns the defaults overridden by any non-empty GREPR_*
// variables. getenv is usually os.Getenv.
func LoadFromEnv(getenv func(string) string) *Config {
	cfg := DefaultConfig()
	if getenv == nil {
		return cfg
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(getenv(EnvColor)); v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	return cfg
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel, logFile, color, format *string) {
	if logLevel != nil {
		c.LogLevel = strings.ToLower(*logLevel)
	}
	if logFile != nil {
		c.LogFile = *logFile
	}
	if color != nil {
		c.Color = strings.ToLower(*color)
	}
	if format != nil {
		c.Format = strings.ToLower(*format)
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if err := logger.ValidateLevel(c.LogLevel); err != nil {
		return err
	}
	if err := display.ValidateColorMode(c.Color); err != nil {
		return err
	}
	if err := display.ValidateFormat(c.Format); err != nil {
		return err
	}
	return nil
}
