package review

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/revet-dev/revet/pkg/core"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven line rule. Rules are stateless: the pattern is
// compiled once at registration and evaluated with MatchString, which keeps
// no match-position state between calls, so every line is matched
// independently.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "JS01"
	Name        string        // Human-readable name, e.g., "javascript.inner_html"
	Group       string        // Category, e.g., "security", "style"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Pattern     *regexp.Regexp
	Message     string // Message attached to findings
}

// CheckFunc is a structural check operating on a whole file. Checks receive
// the full content plus the derived line slice and return their findings;
// they never mutate shared state.
type CheckFunc func(fc *FileContext) []core.Finding

// StructuralCheck binds metadata to a whole-file check function so checks
// can be listed, disabled and severity-overridden like line rules.
type StructuralCheck struct {
	ID          string
	Name        string
	Group       string
	Description string
	Severity    core.Severity // Default severity for findings this check emits
	Check       CheckFunc
}

// LanguageProfile bundles everything bound to one supported language:
// the extensions it claims, its ordered line rules and its structural
// checks. Profiles are independent; they never share rule values.
type LanguageProfile struct {
	Language   string   // Language tag, e.g., "python"
	Extensions []string // File extensions including the dot
	Components []string // Extension subset treated as UI components
	Rules      []RuleDef
	Structural []StructuralCheck
}

// =============================================================================
// File Context
// =============================================================================

// maxExcerptLen bounds the length of code excerpts attached to findings.
const maxExcerptLen = 80

// FileContext carries one file's content through the per-file analysis.
type FileContext struct {
	Path    string // Project-relative path
	Content string
	Lines   []string
}

// NewFileContext splits content into lines once and returns the context.
func NewFileContext(path, content string) *FileContext {
	return &FileContext{
		Path:    path,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Finding constructs a finding for this file at a 1-based line.
// Line 0 means the finding applies to the file as a whole.
func (fc *FileContext) Finding(ruleID string, line int, sev core.Severity, message, excerpt string) core.Finding {
	return core.Finding{
		RuleID:   ruleID,
		Path:     fc.Path,
		Line:     line,
		Severity: sev,
		Message:  message,
		Excerpt:  Excerpt(excerpt),
	}
}

// Excerpt trims and truncates a source line for inclusion in a finding.
func Excerpt(line string) string {
	s := strings.TrimSpace(line)
	if utf8.RuneCountInString(s) <= maxExcerptLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxExcerptLen-1]) + "…"
}
