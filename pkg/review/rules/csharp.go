package rules

import (
	"regexp"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "csharp",
		Extensions: []string{".cs"},
		Rules: []review.RuleDef{
			{
				ID:          "CS01",
				Name:        "csharp.console_writeline",
				Group:       "style",
				Description: "Flag Console.WriteLine left in source.",
				Severity:    core.SeverityLow,
				Pattern:     regexp.MustCompile(`Console\.Write(Line)?\s*\(`),
				Message:     "Console output in library code. Use a logger.",
			},
			{
				ID:          "CS02",
				Name:        "csharp.blocking_task",
				Group:       "correctness",
				Description: "Flag blocking .Result/.Wait() on tasks.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`\.\s*(Result\b|Wait\s*\(|GetAwaiter\s*\(\s*\)\s*\.\s*GetResult)`),
				Message:     "Blocking on a task can deadlock. await it instead.",
			},
			{
				ID:          "CS03",
				Name:        "csharp.hardcoded_credential",
				Group:       "security",
				Description: "Flag hardcoded credential-looking literals.",
				Severity:    core.SeverityCritical,
				Pattern:     regexp.MustCompile(`(?i)(apikey|api_key|secret|auth[_-]?token)\s*=\s*"[^"]{4,}"`),
				Message:     "Possible hardcoded credential. Move secrets to configuration or a vault.",
			},
		},
		Structural: []review.StructuralCheck{
			{
				ID:          "CS10",
				Name:        "csharp.undisposed_resource",
				Group:       "correctness",
				Description: "Flag disposable constructions outside a using block.",
				Severity:    core.SeverityMedium,
				Check:       checkCSharpDisposables,
			},
			{
				ID:          "CS11",
				Name:        "csharp.async_without_await",
				Group:       "correctness",
				Description: "Flag async methods with no await or task-factory call.",
				Severity:    core.SeverityMedium,
				Check:       checkCSharpAsyncAwait,
			},
			{
				ID:          "CS12",
				Name:        "csharp.missing_doc_comment",
				Group:       "documentation",
				Description: "Flag public members without a preceding doc comment.",
				Severity:    core.SeverityLow,
				Check:       checkCSharpDocComments,
			},
			{
				ID:          "CS13",
				Name:        "csharp.useless_catch",
				Group:       "correctness",
				Description: "Flag empty or rethrow-only catch blocks.",
				Severity:    core.SeverityMedium,
				Check:       checkCSharpCatchBlocks,
			},
			{
				ID:          "CS14",
				Name:        "csharp.connection_string_credential",
				Group:       "security",
				Description: "Flag credential-bearing connection strings.",
				Severity:    core.SeverityCritical,
				Check:       checkCSharpConnectionStrings,
			},
		},
	})
}

// Lookahead windows for the structural heuristics, in lines.
const (
	csDisposeWindow = 15
	csAwaitWindow   = 30
)

var (
	csDisposableRe = regexp.MustCompile(`\bnew\s+(SqlConnection|SqlCommand|SqlDataReader|StreamReader|StreamWriter|FileStream|MemoryStream|HttpClient|StringReader|StringWriter|BinaryReader|BinaryWriter)\b`)
	csUsingRe      = regexp.MustCompile(`\busing\s*[\s(]`)
	csAsyncRe      = regexp.MustCompile(`\basync\s+(Task|ValueTask|void)\b`)
	csAwaitRe      = regexp.MustCompile(`\bawait\s|Task\.(Run|Factory|WhenAll|WhenAny)|ContinueWith`)
	csPublicRe     = regexp.MustCompile(`^\s*public\s+(?:static\s+|async\s+|virtual\s+|override\s+|sealed\s+|abstract\s+|partial\s+)*\w`)
	csCatchRe      = regexp.MustCompile(`\bcatch\b`)
	csConnStrRe    = regexp.MustCompile(`(?i)"[^"]*(password|pwd)\s*=\s*[^;"]{1,}[^"]*"`)
)

// checkCSharpDisposables flags disposable constructor calls that are not
// on a using line and have no using or Dispose within the lookahead
// window. Purely textual; ownership transfer across methods is invisible
// to it.
func checkCSharpDisposables(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if !csDisposableRe.MatchString(line) || csUsingRe.MatchString(line) {
			continue
		}
		if windowMatches(fc.Lines, i+1, csDisposeWindow, func(s string) bool {
			return strings.Contains(s, ".Dispose(") || csUsingRe.MatchString(s)
		}) {
			continue
		}
		findings = append(findings, fc.Finding("CS10", i+1, core.SeverityMedium,
			"Disposable resource created outside a using block and never disposed nearby.", line))
	}
	return findings
}

func checkCSharpAsyncAwait(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if !csAsyncRe.MatchString(line) {
			continue
		}
		if windowMatches(fc.Lines, i+1, csAwaitWindow, csAwaitRe.MatchString) {
			continue
		}
		findings = append(findings, fc.Finding("CS11", i+1, core.SeverityMedium,
			"async method with no await or task-factory call. Drop async or await something.", line))
	}
	return findings
}

func checkCSharpDocComments(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if !csPublicRe.MatchString(line) {
			continue
		}
		if prev := strings.TrimSpace(previousNonEmpty(fc.Lines, i)); strings.Contains(prev, "///") || strings.HasPrefix(prev, "[") {
			// Attribute lines sit between the doc comment and the member.
			continue
		}
		findings = append(findings, fc.Finding("CS12", i+1, core.SeverityLow,
			"Public member has no preceding documentation comment.", line))
	}
	return findings
}

// checkCSharpCatchBlocks flags catch blocks whose body is empty or
// contains only a bare rethrow.
func checkCSharpCatchBlocks(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if !csCatchRe.MatchString(line) {
			continue
		}
		body, ok := catchBody(fc.Lines, i)
		if !ok {
			continue
		}
		switch body {
		case "":
			findings = append(findings, fc.Finding("CS13", i+1, core.SeverityMedium,
				"Empty catch block swallows the exception.", line))
		case "throw;":
			findings = append(findings, fc.Finding("CS13", i+1, core.SeverityMedium,
				"Catch block only rethrows. Remove it or add handling.", line))
		}
	}
	return findings
}

func checkCSharpConnectionStrings(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if csConnStrRe.MatchString(line) {
			findings = append(findings, fc.Finding("CS14", i+1, core.SeverityCritical,
				"Connection string carries a hardcoded password. Load it from protected configuration.", line))
		}
	}
	return findings
}

// windowMatches reports whether any of the next n lines starting at from
// satisfies pred.
func windowMatches(lines []string, from, n int, pred func(string) bool) bool {
	end := from + n
	if end > len(lines) {
		end = len(lines)
	}
	for _, line := range lines[from:end] {
		if pred(line) {
			return true
		}
	}
	return false
}

func previousNonEmpty(lines []string, i int) string {
	for j := i - 1; j >= 0; j-- {
		if strings.TrimSpace(lines[j]) != "" {
			return lines[j]
		}
	}
	return ""
}

// catchBody extracts the text between the catch's braces within a small
// window and returns it with all whitespace removed, so an empty block
// yields "" and a bare rethrow yields "throw;". Returns ok=false when the
// block does not open or close inside the window.
func catchBody(lines []string, i int) (string, bool) {
	end := i + 10
	if end > len(lines) {
		end = len(lines)
	}
	blob := strings.Join(lines[i:end], "\n")
	// Anchor at the catch keyword so a try block on the same line does
	// not donate its opening brace.
	loc := csCatchRe.FindStringIndex(blob)
	if loc == nil {
		return "", false
	}
	open := strings.Index(blob[loc[1]:], "{")
	if open < 0 {
		return "", false
	}
	open += loc[1]
	depth := 0
	for j := open; j < len(blob); j++ {
		switch blob[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.Join(strings.Fields(blob[open+1:j]), ""), true
			}
		}
	}
	return "", false
}
