package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Instance is the run identifier; generated files are named
	// <Instance>-<index>.<Extension>. Only required for generation.
	Instance string

	SpecPath     string
	OutputDir    string
	TemplatePath string
	Root         string // gjson path of the spec inside a larger document
	Extension    string

	// Limit stops generation after this many files. 0 means all.
	Limit  int
	DryRun bool
	Quiet  bool

	LogFormat string
	LogLevel  string
	NoColor   bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("spec path is required")
	}
	if strings.ContainsAny(cfg.Instance, `/\`) {
		return nil, fmt.Errorf("instance name %q cannot contain path separators", cfg.Instance)
	}
	if cfg.Limit < 0 {
		return nil, errors.New("limit cannot be negative")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
