// Package logging builds the zap logger used by the CLI and defines the
// canonical field names shared across packages.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Canonical log field names.
const (
	KeyRunID      = "run_id"
	KeyBook       = "book"
	KeySheet      = "sheet"
	KeyRange      = "range"
	KeyConvention = "convention"
	KeyProtocol   = "protocol"
	KeyStages     = "stages"
	KeyEntries    = "entries"
	KeyProducts   = "products"
	KeyPath       = "path"
)

func RunID(id string) zap.Field      { return zap.String(KeyRunID, id) }
func Book(name string) zap.Field     { return zap.String(KeyBook, name) }
func Sheet(name string) zap.Field    { return zap.String(KeySheet, name) }
func Range(r string) zap.Field       { return zap.String(KeyRange, r) }
func Convention(c string) zap.Field  { return zap.String(KeyConvention, c) }
func Protocol(name string) zap.Field { return zap.String(KeyProtocol, name) }
func Path(p string) zap.Field        { return zap.String(KeyPath, p) }

// New builds a logger writing to stderr.
//
// Level values: "debug", "info", "warn", "error" (default: "info").
// Format values: "json", "console" (default: "console").
func New(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(format) {
	case "json":
		cfg = zap.NewProductionConfig()
	case "", "console", "text":
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be json or console)", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name to a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
