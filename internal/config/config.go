// Package config loads protoextract settings from an optional YAML file, an
// optional .env file and the environment, in that order of increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvOutput    = "PROTOEXTRACT_OUTPUT"
	EnvPretty    = "PROTOEXTRACT_PRETTY"
	EnvLogLevel  = "PROTOEXTRACT_LOG_LEVEL"
	EnvLogFormat = "PROTOEXTRACT_LOG_FORMAT"
)

// DefaultEnvFile is the dotenv file read when present.
const DefaultEnvFile = ".env"

// Config holds all protoextract configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	// Sheets restricts processing to the named sheets (empty: all sheets).
	Sheets []string `yaml:"sheets"`
}

// OutputConfig controls where and how the document is written.
type OutputConfig struct {
	// Path is the output file (empty: stdout).
	Path string `yaml:"path"`
	// Pretty enables indented JSON.
	Pretty bool `yaml:"pretty"`
	// ProtocolsDir receives one JSON file per protocol when set.
	ProtocolsDir string `yaml:"protocols_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `yaml:"level"`
	// Format is the log format: console or json (default: console)
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty), loads
// envFile into the environment when it exists, applies environment
// overrides and validates the result.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config load: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config parse %s: %w", path, err)
		}
	}

	if err := loadEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("config env file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(envFile)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Path = v
	}
	if v := os.Getenv(EnvPretty); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", EnvPretty, v, err)
		}
		c.Output.Pretty = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "console", "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}

	for i, s := range c.Sheets {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("sheets[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
