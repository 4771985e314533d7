package rules

import (
	"sort"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review/project"
)

func init() {
	project.Register(project.RuleDef{
		ID:          "PR01",
		Name:        "project.duplicate_services",
		Group:       "structure",
		Description: "Flag service files duplicated across the tree.",
		Severity:    core.SeverityCritical,
		Check:       checkDuplicateServices,
	})
}

// checkDuplicateServices groups source files whose extension-stripped,
// case-folded base name follows the service naming convention. Any group
// with more than one distinct path is reported once, naming every path.
// Name matching only; two unrelated services that share a name still trip
// it.
func checkDuplicateServices(ctx *project.Context) []core.Finding {
	groups := make(map[string][]string)
	for _, f := range ctx.SourceFiles() {
		base := strings.ToLower(strings.TrimSuffix(f.RelPath[strings.LastIndexByte(f.RelPath, '/')+1:], f.Ext))
		if !strings.HasSuffix(base, "service") {
			continue
		}
		groups[base] = append(groups[base], f.RelPath)
	}

	names := make([]string, 0, len(groups))
	for name, paths := range groups {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var findings []core.Finding
	for _, name := range names {
		paths := groups[name]
		sort.Strings(paths)
		findings = append(findings, core.Finding{
			RuleID:   "PR01",
			Path:     paths[0],
			Line:     0,
			Severity: core.SeverityCritical,
			Message:  "Duplicate service '" + name + "' found at: " + strings.Join(paths, ", "),
		})
	}
	return findings
}
