// Package config provides configuration for record conversion.
// It is decoupled from any command-line surface: callers load a Config and
// build their decoder and logger from it.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leapstack-labs/dbtgooddata/pkg/record"
)

// Config holds conversion settings.
type Config struct {
	// Decode controls coercion leniency when materializing records.
	Decode record.Options `koanf:"decode"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// NewLogger builds a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// NewDecoder returns a record decoder using the configured options.
func (c *Config) NewDecoder(logger *slog.Logger) *record.Decoder {
	return record.NewDecoder(c.Decode, logger)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", s)
	}
	return level, nil
}
