package core

import "fmt"

// =============================================================================
// Finding
// =============================================================================

// Finding represents one reported issue at a specific severity, file, and line.
// Findings are immutable once created.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Path     string   `json:"path"` // project-relative; empty for project scope
	Line     int      `json:"line"` // 1-based; 0 means file or project scope
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Excerpt  string   `json:"excerpt,omitempty"`
}

// Location renders the finding's position as "path:line".
// File-scope findings render as the bare path, project-scope as "project".
func (f Finding) Location() string {
	if f.Path == "" {
		return "project"
	}
	if f.Line == 0 {
		return f.Path
	}
	return fmt.Sprintf("%s:%d", f.Path, f.Line)
}

// RuleInfo provides metadata about a rule for documentation/tooling.
// This is a DTO - it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Language        string   `json:"language,omitempty"` // Empty for project rules
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	Type            string   `json:"type"` // "line", "structural" or "project"
}
