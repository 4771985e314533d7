package rules

import (
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review/project"
)

func init() {
	project.Register(project.RuleDef{
		ID:          "PR02",
		Name:        "project.no_tests",
		Group:       "testing",
		Description: "Flag projects with no test files at all.",
		Severity:    core.SeverityHigh,
		Check:       checkTestPresence,
	})
}

// testDirNames are directory segments that mark a file as a test by
// convention.
var testDirNames = map[string]bool{
	"__tests__": true,
	"test":      true,
	"tests":     true,
	"spec":      true,
}

// isTestFile applies the common test-naming conventions across the
// supported languages.
func isTestFile(relPath string) bool {
	lower := strings.ToLower(relPath)
	name := lower
	if i := strings.LastIndexByte(lower, '/'); i >= 0 {
		name = lower[i+1:]
		for _, seg := range strings.Split(lower[:i], "/") {
			if testDirNames[seg] {
				return true
			}
		}
	}
	if strings.Contains(name, ".test.") || strings.Contains(name, ".spec.") {
		return true
	}
	if strings.HasPrefix(name, "test_") {
		return true
	}
	dot := strings.LastIndexByte(name, '.')
	return dot > 0 && strings.HasSuffix(name[:dot], "_test")
}

// checkTestPresence emits one project-scope finding when the discovered
// set contains no test files. The finding disappears as soon as a single
// correctly named test file exists.
func checkTestPresence(ctx *project.Context) []core.Finding {
	for _, f := range ctx.SourceFiles() {
		if isTestFile(f.RelPath) {
			return nil
		}
	}
	return []core.Finding{{
		RuleID:   "PR02",
		Path:     "",
		Line:     0,
		Severity: core.SeverityHigh,
		Message:  "No test files found in the project. Introduce a testing framework and add coverage.",
	}}
}
