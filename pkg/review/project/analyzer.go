package project

import (
	"github.com/revet-dev/revet/pkg/core"
)

// Analyzer runs project-level rules against the discovered file set.
type Analyzer struct {
	config *AnalyzerConfig
}

// AnalyzerConfig holds configuration for the project analyzer.
type AnalyzerConfig struct {
	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules.
	SeverityOverrides map[string]core.Severity
}

// NewAnalyzerConfig creates a default configuration.
func NewAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
	}
}

// NewAnalyzer creates a new project analyzer with optional configuration.
func NewAnalyzer(config *AnalyzerConfig) *Analyzer {
	if config == nil {
		config = NewAnalyzerConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all registered project rules against the context and
// returns their findings.
func (a *Analyzer) Analyze(ctx *Context) []core.Finding {
	if ctx == nil {
		return nil
	}

	var findings []core.Finding
	for _, rule := range GetAll() {
		if a.config.DisabledRules[rule.ID] {
			continue
		}
		found := rule.Check(ctx)
		for i := range found {
			if sev, ok := a.config.SeverityOverrides[found[i].RuleID]; ok {
				found[i].Severity = sev
			}
		}
		findings = append(findings, found...)
	}
	return findings
}
