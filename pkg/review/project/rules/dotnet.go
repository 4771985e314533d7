package rules

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review/project"
)

func init() {
	project.Register(project.RuleDef{
		ID:          "PR06",
		Name:        "dotnet.target_framework",
		Group:       "dotnet",
		Description: "Flag project descriptors targeting an out-of-support runtime.",
		Severity:    core.SeverityMedium,
		Check:       checkDotnetTargetFramework,
	})
	project.Register(project.RuleDef{
		ID:          "PR07",
		Name:        "dotnet.nullable_disabled",
		Group:       "dotnet",
		Description: "Flag project descriptors without nullable reference types enabled.",
		Severity:    core.SeverityMedium,
		Check:       checkDotnetNullable,
	})
	project.Register(project.RuleDef{
		ID:          "PR08",
		Name:        "dotnet.config_secrets",
		Group:       "dotnet",
		Description: "Flag hardcoded secrets in descriptors and runtime configuration.",
		Severity:    core.SeverityCritical,
		Check:       checkDotnetConfigSecrets,
	})
	project.Register(project.RuleDef{
		ID:          "PR09",
		Name:        "dotnet.descriptor_unparsable",
		Group:       "dotnet",
		Description: "Flag project descriptors that cannot be parsed as MSBuild XML.",
		Severity:    core.SeverityCritical,
		Check:       checkDotnetDescriptorParse,
	})
}

// minDotnetMajor is the oldest .NET major version not flagged as outdated.
const minDotnetMajor = 6

// csprojFile models the property groups of an MSBuild project descriptor.
type csprojFile struct {
	XMLName        xml.Name `xml:"Project"`
	PropertyGroups []struct {
		TargetFramework  string `xml:"TargetFramework"`
		TargetFrameworks string `xml:"TargetFrameworks"`
		Nullable         string `xml:"Nullable"`
	} `xml:"PropertyGroup"`
}

func loadCsproj(ctx *project.Context, f core.FileInfo) (*csprojFile, bool) {
	content, err := ctx.ReadFile(f)
	if err != nil {
		return nil, false
	}
	var proj csprojFile
	if err := xml.Unmarshal([]byte(content), &proj); err != nil {
		return nil, false
	}
	return &proj, true
}

var netVersionRe = regexp.MustCompile(`^net(\d+)\.`)

// frameworkOutdated reports whether a target framework moniker names a
// runtime below the supported threshold.
func frameworkOutdated(tfm string) bool {
	tfm = strings.ToLower(strings.TrimSpace(tfm))
	if tfm == "" {
		return false
	}
	if strings.HasPrefix(tfm, "netcoreapp") {
		return true
	}
	if m := netVersionRe.FindStringSubmatch(tfm); m != nil {
		major, _ := strconv.Atoi(m[1])
		return major < minDotnetMajor
	}
	// net48, net472 and the other 4.x monikers have no dot.
	if strings.HasPrefix(tfm, "net4") {
		return true
	}
	return false
}

// checkDotnetDescriptorParse reports descriptors the other dotnet rules
// had to skip because they do not parse.
func checkDotnetDescriptorParse(ctx *project.Context) []core.Finding {
	var findings []core.Finding
	for _, f := range ctx.ByExt(".csproj") {
		if _, ok := loadCsproj(ctx, f); !ok {
			findings = append(findings, core.Finding{
				RuleID:   "PR09",
				Path:     f.RelPath,
				Severity: core.SeverityCritical,
				Message:  "Project descriptor could not be parsed.",
			})
		}
	}
	return findings
}

func checkDotnetTargetFramework(ctx *project.Context) []core.Finding {
	var findings []core.Finding
	for _, f := range ctx.ByExt(".csproj") {
		proj, ok := loadCsproj(ctx, f)
		if !ok {
			continue // PR09 reports the parse failure
		}
		for _, pg := range proj.PropertyGroups {
			monikers := []string{pg.TargetFramework}
			if pg.TargetFrameworks != "" {
				monikers = strings.Split(pg.TargetFrameworks, ";")
			}
			for _, tfm := range monikers {
				if frameworkOutdated(tfm) {
					findings = append(findings, core.Finding{
						RuleID:   "PR06",
						Path:     f.RelPath,
						Severity: core.SeverityMedium,
						Message:  "Targets " + strings.TrimSpace(tfm) + ", which is out of support. Move to net" + strconv.Itoa(minDotnetMajor) + ".0 or later.",
					})
				}
			}
		}
	}
	return findings
}

func checkDotnetNullable(ctx *project.Context) []core.Finding {
	var findings []core.Finding
	for _, f := range ctx.ByExt(".csproj") {
		proj, ok := loadCsproj(ctx, f)
		if !ok {
			continue // PR09 reports the parse failure
		}
		enabled := false
		for _, pg := range proj.PropertyGroups {
			if strings.EqualFold(strings.TrimSpace(pg.Nullable), "enable") {
				enabled = true
			}
		}
		if !enabled {
			findings = append(findings, core.Finding{
				RuleID:   "PR07",
				Path:     f.RelPath,
				Severity: core.SeverityMedium,
				Message:  "Nullable reference types are not enabled. Add <Nullable>enable</Nullable>.",
			})
		}
	}
	return findings
}

var configSecretRe = regexp.MustCompile(`(?i)(password|pwd|secret|apikey|api_key|token)["']?\s*[:=]\s*["'][^"']{4,}["']|(?i)(password|pwd)\s*=\s*[^;"'<\s]{4,}`)

// checkDotnetConfigSecrets scans descriptors and their associated runtime
// configuration files line by line for credential-looking values.
func checkDotnetConfigSecrets(ctx *project.Context) []core.Finding {
	var findings []core.Finding
	for _, f := range ctx.Files {
		if f.Kind != core.FileKindProject {
			continue
		}
		name := strings.ToLower(f.RelPath)
		if !strings.HasSuffix(name, ".csproj") && !strings.Contains(name, "appsettings") && !strings.HasSuffix(name, "web.config") {
			continue
		}
		content, err := ctx.ReadFile(f)
		if err != nil {
			continue
		}
		for i, line := range strings.Split(content, "\n") {
			if configSecretRe.MatchString(line) {
				findings = append(findings, core.Finding{
					RuleID:   "PR08",
					Path:     f.RelPath,
					Line:     i + 1,
					Severity: core.SeverityCritical,
					Message:  "Configuration contains a hardcoded secret. Use user-secrets or environment configuration.",
				})
			}
		}
	}
	return findings
}
