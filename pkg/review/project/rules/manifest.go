package rules

import (
	"encoding/json"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review/project"
)

func init() {
	project.Register(project.RuleDef{
		ID:          "PR03",
		Name:        "project.manifest_no_linter",
		Group:       "manifest",
		Description: "Flag package manifests with no lint tooling declared.",
		Severity:    core.SeverityMedium,
		Check:       checkManifestLinter,
	})
	project.Register(project.RuleDef{
		ID:          "PR04",
		Name:        "project.manifest_no_test_framework",
		Group:       "manifest",
		Description: "Flag package manifests with no test framework declared.",
		Severity:    core.SeverityHigh,
		Check:       checkManifestTestFramework,
	})
	project.Register(project.RuleDef{
		ID:          "PR05",
		Name:        "project.manifest_unparsable",
		Group:       "manifest",
		Description: "Flag package manifests that cannot be parsed.",
		Severity:    core.SeverityCritical,
		Check:       checkManifestParses,
	})
}

// packageManifest models the fields of package.json the inspectors need.
// Missing keys decode to nil maps, which is a designed case, not an error.
type packageManifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

var lintTools = []string{"eslint", "jshint", "tslint", "@biomejs/biome", "standard", "xo", "oxlint"}

var testFrameworks = []string{"jest", "mocha", "vitest", "jasmine", "ava", "karma", "@playwright/test", "cypress", "tape", "uvu"}

// allDependencies merges dependencies and devDependencies into one set of
// lowercased package names.
func (m *packageManifest) allDependencies() map[string]bool {
	deps := make(map[string]bool, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		deps[strings.ToLower(name)] = true
	}
	for name := range m.DevDependencies {
		deps[strings.ToLower(name)] = true
	}
	return deps
}

func (m *packageManifest) declaresAny(tools []string) bool {
	deps := m.allDependencies()
	for _, tool := range tools {
		if deps[tool] {
			return true
		}
	}
	return false
}

// loadManifests parses every discovered package.json. Parse failures are
// returned separately so PR05 reports them and PR03/PR04 stay quiet about
// files they could not inspect.
func loadManifests(ctx *project.Context) (parsed map[string]*packageManifest, failed []string) {
	parsed = make(map[string]*packageManifest)
	for _, f := range ctx.ByName("package.json") {
		content, err := ctx.ReadFile(f)
		if err != nil {
			failed = append(failed, f.RelPath)
			continue
		}
		var m packageManifest
		if err := json.Unmarshal([]byte(content), &m); err != nil {
			failed = append(failed, f.RelPath)
			continue
		}
		parsed[f.RelPath] = &m
	}
	return parsed, failed
}

func checkManifestLinter(ctx *project.Context) []core.Finding {
	parsed, _ := loadManifests(ctx)
	var findings []core.Finding
	for path, m := range parsed {
		if m.declaresAny(lintTools) {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:   "PR03",
			Path:     path,
			Severity: core.SeverityMedium,
			Message:  "No lint tooling declared in the manifest. Add a linter such as eslint.",
		})
	}
	return findings
}

func checkManifestTestFramework(ctx *project.Context) []core.Finding {
	parsed, _ := loadManifests(ctx)
	var findings []core.Finding
	for path, m := range parsed {
		if m.declaresAny(testFrameworks) {
			continue
		}
		findings = append(findings, core.Finding{
			RuleID:   "PR04",
			Path:     path,
			Severity: core.SeverityHigh,
			Message:  "No test framework declared in the manifest. Add one such as jest or vitest.",
		})
	}
	return findings
}

func checkManifestParses(ctx *project.Context) []core.Finding {
	_, failed := loadManifests(ctx)
	var findings []core.Finding
	for _, path := range failed {
		findings = append(findings, core.Finding{
			RuleID:   "PR05",
			Path:     path,
			Severity: core.SeverityCritical,
			Message:  "Package manifest could not be parsed.",
		})
	}
	return findings
}
