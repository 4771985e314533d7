package rules

import (
	"fmt"
	"regexp"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "javascript",
		Extensions: []string{".js", ".mjs", ".cjs", ".jsx", ".vue"},
		Components: []string{".jsx", ".vue"},
		Rules:      scriptRules("javascript", "JS"),
	})
}

// scriptRules builds the shared JavaScript/TypeScript line rules. Each call
// returns fresh rule values so profiles never share rules.
func scriptRules(lang, prefix string) []review.RuleDef {
	id := func(n int) string { return fmt.Sprintf("%s%02d", prefix, n) }
	return []review.RuleDef{
		{
			ID:          id(1),
			Name:        lang + ".inner_html",
			Group:       "security",
			Description: "Flag direct innerHTML/outerHTML assignment.",
			Severity:    core.SeverityCritical,
			Pattern:     regexp.MustCompile(`\.(innerHTML|outerHTML)\s*=`),
			Message:     "Direct innerHTML assignment can introduce XSS. Use textContent or a sanitizer.",
		},
		{
			ID:          id(2),
			Name:        lang + ".document_write",
			Group:       "security",
			Description: "Flag document.write usage.",
			Severity:    core.SeverityHigh,
			Pattern:     regexp.MustCompile(`document\.write\s*\(`),
			Message:     "document.write blocks parsing and enables injection. Use DOM APIs instead.",
		},
		{
			ID:          id(3),
			Name:        lang + ".eval",
			Group:       "security",
			Description: "Flag eval of dynamic strings.",
			Severity:    core.SeverityCritical,
			Pattern:     regexp.MustCompile(`\beval\s*\(`),
			Message:     "eval executes arbitrary code. Refactor to avoid dynamic evaluation.",
		},
		{
			ID:          id(4),
			Name:        lang + ".console_log",
			Group:       "style",
			Description: "Flag console.log left in source.",
			Severity:    core.SeverityLow,
			Pattern:     regexp.MustCompile(`console\.log\s*\(`),
			Message:     "console.log left in code. Use a logger or remove it.",
		},
		{
			ID:          id(5),
			Name:        lang + ".var_declaration",
			Group:       "style",
			Description: "Flag var declarations.",
			Severity:    core.SeverityLow,
			Pattern:     regexp.MustCompile(`^\s*var\s+`),
			Message:     "var is function-scoped. Prefer const or let.",
		},
		{
			ID:          id(6),
			Name:        lang + ".loose_equality",
			Group:       "correctness",
			Description: "Flag == and != comparisons.",
			Severity:    core.SeverityMedium,
			Pattern:     regexp.MustCompile(`([^=!<>]==[^=])|([^!]!=[^=])`),
			Message:     "Loose equality coerces types. Use === or !==.",
		},
		{
			ID:          id(7),
			Name:        lang + ".debugger",
			Group:       "correctness",
			Description: "Flag debugger statements.",
			Severity:    core.SeverityMedium,
			Pattern:     regexp.MustCompile(`^\s*debugger\b`),
			Message:     "debugger statement left in code.",
		},
		{
			ID:          id(8),
			Name:        lang + ".hardcoded_credential",
			Group:       "security",
			Description: "Flag hardcoded credential-looking literals.",
			Severity:    core.SeverityCritical,
			Pattern:     regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|auth[_-]?token)\s*[:=]\s*["'][^"']{4,}["']`),
			Message:     "Possible hardcoded credential. Move secrets to environment or a vault.",
		},
	}
}
