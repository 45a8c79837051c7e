// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Output
	Format         string `json:"format,omitempty" validate:"omitempty,oneof=json text"` // Report output format
	Pretty         bool   `json:"pretty,omitempty"`                                      // Indent JSON output
	Verbose        bool   `json:"verbose,omitempty"`                                     // Print per-step progress
	ValidateSchema bool   `json:"validate_schema,omitempty"`                             // Check reports against the JSON Schema

	// Batch
	BatchConcurrency int `json:"batch_concurrency,omitempty" validate:"gte=0,lte=64"` // Parallel analyses per batch

	// Server
	Port         int             `json:"port,omitempty" validate:"gte=0,lte=65535"`
	MaxBodyBytes int64           `json:"max_body_bytes,omitempty" validate:"gte=0"`
	RateLimit    RateLimitConfig `json:"rate_limit"`
}

// RateLimitConfig configures the server's per-client rate limit
type RateLimitConfig struct {
	Enabled bool   `json:"enabled,omitempty"`
	Limit   int    `json:"limit,omitempty" validate:"gte=0"`
	Window  string `json:"window,omitempty"` // Go duration, e.g. "1m"
}

// WindowDuration parses Window. An empty window is zero.
func (r RateLimitConfig) WindowDuration() (time.Duration, error) {
	if r.Window == "" {
		return 0, nil
	}
	return time.ParseDuration(r.Window)
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Format:           FormatJSON,
		BatchConcurrency: 4,
		Port:             8080,
		MaxBodyBytes:     1 << 20,
		RateLimit: RateLimitConfig{
			Enabled: true,
			Limit:   60,
			Window:  "1m",
		},
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

// newValidator reports field errors by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Zero values are allowed since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' (got %v)", fieldPath(fe), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	window, err := c.RateLimit.WindowDuration()
	if err != nil {
		return fmt.Errorf("config error: 'rate_limit.window' is not a duration: %w", err)
	}
	if window < 0 {
		return fmt.Errorf("config error: 'rate_limit.window' must be positive")
	}

	return nil
}

// fieldPath strips the root struct name from a validator namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if result.RateLimit.Limit == 0 {
		result.RateLimit.Limit = defaults.RateLimit.Limit
	}
	if result.RateLimit.Window == "" {
		result.RateLimit.Window = defaults.RateLimit.Window
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
