package rules

import (
	"regexp"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "python",
		Extensions: []string{".py"},
		Rules: []review.RuleDef{
			{
				ID:          "PY01",
				Name:        "python.eval_exec",
				Group:       "security",
				Description: "Flag eval/exec of dynamic strings.",
				Severity:    core.SeverityCritical,
				Pattern:     regexp.MustCompile(`\b(eval|exec)\s*\(`),
				Message:     "eval/exec executes arbitrary code. Refactor to avoid dynamic evaluation.",
			},
			{
				ID:          "PY02",
				Name:        "python.bare_except",
				Group:       "correctness",
				Description: "Flag bare except clauses.",
				Severity:    core.SeverityMedium,
				Pattern:     regexp.MustCompile(`^\s*except\s*:\s*$`),
				Message:     "Bare except swallows every exception, including KeyboardInterrupt. Catch a specific type.",
			},
			{
				ID:          "PY03",
				Name:        "python.os_system",
				Group:       "security",
				Description: "Flag os.system shell invocations.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`os\.system\s*\(`),
				Message:     "os.system runs through the shell. Use subprocess.run with an argument list.",
			},
			{
				ID:          "PY04",
				Name:        "python.shell_true",
				Group:       "security",
				Description: "Flag subprocess calls with shell=True.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`shell\s*=\s*True`),
				Message:     "shell=True enables shell injection. Pass an argument list instead.",
			},
			{
				ID:          "PY05",
				Name:        "python.hardcoded_credential",
				Group:       "security",
				Description: "Flag hardcoded credential-looking literals.",
				Severity:    core.SeverityCritical,
				Pattern:     regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|auth[_-]?token)\s*=\s*["'][^"']{4,}["']`),
				Message:     "Possible hardcoded credential. Move secrets to environment or a vault.",
			},
		},
		Structural: []review.StructuralCheck{
			{
				ID:          "PY10",
				Name:        "python.missing_return_annotation",
				Group:       "typing",
				Description: "Flag functions with annotated parameters but no return annotation.",
				Severity:    core.SeverityLow,
				Check:       checkPythonReturnAnnotations,
			},
			{
				ID:          "PY11",
				Name:        "python.print_without_logging",
				Group:       "style",
				Description: "Flag print calls in files that never import logging.",
				Severity:    core.SeverityLow,
				Check:       checkPythonPrintLogging,
			},
		},
	})
}

var (
	pyDefRe     = regexp.MustCompile(`^\s*def\s+(\w+)\s*\(([^)]*)\)\s*(->\s*[^:]+)?:`)
	pyPrintRe   = regexp.MustCompile(`\bprint\s*\(`)
	pyLoggingRe = regexp.MustCompile(`(?m)^\s*(import\s+logging|from\s+logging\s+import)`)
)

// checkPythonReturnAnnotations flags single-line def statements that
// annotate at least one parameter but omit the return annotation. Dunder
// constructors are exempt since they conventionally return None untyped.
func checkPythonReturnAnnotations(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		m := pyDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name, params, returns := m[1], m[2], m[3]
		if name == "__init__" || name == "__new__" {
			continue
		}
		if returns != "" || !strings.Contains(params, ":") {
			continue
		}
		findings = append(findings, fc.Finding("PY10", i+1, core.SeverityLow,
			"Function '"+name+"' annotates its parameters but not its return type.", line))
	}
	return findings
}

// checkPythonPrintLogging flags every print call when the file never
// imports the logging facility.
func checkPythonPrintLogging(fc *review.FileContext) []core.Finding {
	if pyLoggingRe.MatchString(fc.Content) {
		return nil
	}
	var findings []core.Finding
	for i, line := range fc.Lines {
		if pyPrintRe.MatchString(line) {
			findings = append(findings, fc.Finding("PY11", i+1, core.SeverityLow,
				"print() used with no logging import in this file. Prefer the logging module.", line))
		}
	}
	return findings
}
