package review

import (
	"fmt"
	"os"

	"github.com/revet-dev/revet/pkg/core"
)

// Built-in rule IDs emitted by the analyzer itself rather than by a
// language profile.
const (
	RuleFileTooLong      = "SZ01"
	RuleComponentTooLong = "SZ02"
	RuleUnreadableFile   = "IO01"
	RuleCheckPanic       = "RT01"
)

// BuiltinRules describes the analyzer's own rules for the rules listing.
var BuiltinRules = []core.RuleInfo{
	{ID: RuleFileTooLong, Name: "size.file_too_long", Group: "size", Description: "File exceeds the maximum line count.", DefaultSeverity: core.SeverityHigh, Type: "structural"},
	{ID: RuleComponentTooLong, Name: "size.component_too_long", Group: "size", Description: "UI component exceeds the component line count.", DefaultSeverity: core.SeverityMedium, Type: "structural"},
	{ID: RuleUnreadableFile, Name: "io.unreadable_file", Group: "io", Description: "File could not be read and was skipped.", DefaultSeverity: core.SeverityMedium, Type: "structural"},
	{ID: RuleCheckPanic, Name: "runtime.check_failed", Group: "io", Description: "A structural check failed and was skipped for this file.", DefaultSeverity: core.SeverityInfo, Type: "structural"},
}

// Analyzer runs size checks, line rules and structural checks against
// individual files. It holds no per-file state, so one analyzer may be
// shared across goroutines.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeFile reads one discovered file and returns its findings. A read
// failure is recorded as a medium finding and never aborts the run.
func (a *Analyzer) AnalyzeFile(file core.FileInfo) []core.Finding {
	data, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return []core.Finding{{
			RuleID:   RuleUnreadableFile,
			Path:     file.RelPath,
			Line:     0,
			Severity: a.config.GetSeverity(RuleUnreadableFile, core.SeverityMedium),
			Message:  fmt.Sprintf("Could not read file: %v", err),
		}}
	}
	return a.AnalyzeContent(file, string(data))
}

// AnalyzeContent analyzes already-read content. Split out so tests and the
// watch loop can feed content directly.
func (a *Analyzer) AnalyzeContent(file core.FileInfo, content string) []core.Finding {
	fc := NewFileContext(file.RelPath, content)

	var findings []core.Finding
	findings = append(findings, a.sizeFindings(file, fc)...)

	profile, ok := ProfileFor(file.Language)
	if !ok {
		return findings
	}

	findings = append(findings, a.lineFindings(profile, fc)...)
	findings = append(findings, a.structuralFindings(profile, fc)...)
	return findings
}

// sizeFindings applies the file and component size thresholds.
func (a *Analyzer) sizeFindings(file core.FileInfo, fc *FileContext) []core.Finding {
	var findings []core.Finding
	lines := len(fc.Lines)
	if !a.config.IsDisabled(RuleFileTooLong) && lines > a.config.MaxFileLines {
		findings = append(findings, core.Finding{
			RuleID:   RuleFileTooLong,
			Path:     fc.Path,
			Line:     1,
			Severity: a.config.GetSeverity(RuleFileTooLong, core.SeverityHigh),
			Message:  fmt.Sprintf("File has %d lines, which exceeds the maximum of %d. Consider splitting it.", lines, a.config.MaxFileLines),
		})
	}
	if file.Component && !a.config.IsDisabled(RuleComponentTooLong) && lines > a.config.MaxComponentLines {
		findings = append(findings, core.Finding{
			RuleID:   RuleComponentTooLong,
			Path:     fc.Path,
			Line:     1,
			Severity: a.config.GetSeverity(RuleComponentTooLong, core.SeverityMedium),
			Message:  fmt.Sprintf("Component has %d lines, which exceeds the component maximum of %d.", lines, a.config.MaxComponentLines),
		})
	}
	return findings
}

// lineFindings runs every enabled line rule over every line. A single line
// may trigger multiple rules; each match is an independent finding.
func (a *Analyzer) lineFindings(profile *LanguageProfile, fc *FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		for _, rule := range profile.Rules {
			if a.config.IsDisabled(rule.ID) {
				continue
			}
			// MatchString carries no state between calls, so lines are
			// matched independently.
			if rule.Pattern.MatchString(line) {
				findings = append(findings, fc.Finding(rule.ID, i+1,
					a.config.GetSeverity(rule.ID, rule.Severity), rule.Message, line))
			}
		}
	}
	return findings
}

// structuralFindings runs the profile's whole-file checks. A panicking
// check is downgraded to an info finding for the file and the remaining
// checks still run.
func (a *Analyzer) structuralFindings(profile *LanguageProfile, fc *FileContext) []core.Finding {
	var findings []core.Finding
	for _, check := range profile.Structural {
		if a.config.IsDisabled(check.ID) {
			continue
		}
		found := a.runCheck(check, fc)
		for i := range found {
			found[i].Severity = a.config.GetSeverity(found[i].RuleID, found[i].Severity)
		}
		findings = append(findings, found...)
	}
	return findings
}

func (a *Analyzer) runCheck(check StructuralCheck, fc *FileContext) (findings []core.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = []core.Finding{{
				RuleID:   RuleCheckPanic,
				Path:     fc.Path,
				Line:     0,
				Severity: a.config.GetSeverity(RuleCheckPanic, core.SeverityInfo),
				Message:  fmt.Sprintf("Check %s failed on this file and was skipped: %v", check.ID, r),
			}}
		}
	}()
	return check.Check(fc)
}
