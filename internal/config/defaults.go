package config

import "github.com/leapstack-labs/dbtgooddata/pkg/record"

// Default configuration values.
const (
	DefaultLogLevel = "info"
)

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		Decode:   record.DefaultOptions(),
		LogLevel: DefaultLogLevel,
	}
}

// defaultValues is Defaults flattened to koanf keys.
func defaultValues() map[string]any {
	d := Defaults()
	return map[string]any{
		"decode.disallow_unknown_fields": d.Decode.DisallowUnknownFields,
		"decode.allow_integral_floats":   d.Decode.AllowIntegralFloats,
		"decode.case_insensitive_enums":  d.Decode.CaseInsensitiveEnums,
		"log_level":                      d.LogLevel,
	}
}

// ApplyDefaults fills empty values of c.
func ApplyDefaults(c *Config) {
	if c == nil {
		return
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
