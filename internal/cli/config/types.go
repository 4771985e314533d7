// Package config provides configuration management for the revet CLI.
//
// Configuration is layered: defaults, then revet.yaml, then REVET_*
// environment variables, then CLI flags, highest last.
package config

import (
	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

// Config holds all CLI configuration options.
type Config struct {
	MaxFileLines      int               `koanf:"max_file_lines"`
	MaxComponentLines int               `koanf:"max_component_lines"`
	Exclude           []string          `koanf:"exclude"`  // Extra directory names to skip
	Disabled          []string          `koanf:"disabled"` // Rule IDs to skip
	Severity          map[string]string `koanf:"severity"` // Rule ID -> severity override
	Workers           int               `koanf:"workers"`
	Verbose           bool              `koanf:"verbose"`
	OutputFormat      string            `koanf:"output"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// ReviewConfig converts the CLI configuration into the engine's config.
// Unknown severity strings are ignored rather than failing the run.
func (c *Config) ReviewConfig() *review.Config {
	cfg := review.NewConfig()
	if c.MaxFileLines > 0 {
		cfg.MaxFileLines = c.MaxFileLines
	}
	if c.MaxComponentLines > 0 {
		cfg.MaxComponentLines = c.MaxComponentLines
	}
	cfg.ExcludeDirs = append(cfg.ExcludeDirs, c.Exclude...)
	cfg.Workers = c.Workers
	for _, id := range c.Disabled {
		cfg.Disable(id)
	}
	for id, sev := range c.Severity {
		if s, ok := core.ParseSeverity(sev); ok {
			cfg.SetSeverity(id, s)
		}
	}
	return cfg
}
