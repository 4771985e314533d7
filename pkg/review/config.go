package review

import "github.com/revet-dev/revet/pkg/core"

// Default size thresholds.
const (
	DefaultMaxFileLines      = 500
	DefaultMaxComponentLines = 300
)

// Config controls which rules run, their severity, and the size thresholds.
type Config struct {
	// MaxFileLines is the line count above which a file is flagged.
	MaxFileLines int

	// MaxComponentLines is the stricter limit for UI-component files.
	MaxComponentLines int

	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]core.Severity

	// ExcludeDirs adds directory names to the built-in deny-list.
	ExcludeDirs []string

	// Workers bounds parallel per-file analysis; 0 means GOMAXPROCS.
	Workers int
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		MaxFileLines:      DefaultMaxFileLines,
		MaxComponentLines: DefaultMaxComponentLines,
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}
