package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revet-dev/revet/pkg/core"
)

func TestReportBucketsAndCounts(t *testing.T) {
	findings := []core.Finding{
		{RuleID: "JS03", Path: "a.js", Line: 4, Severity: core.SeverityCritical},
		{RuleID: "JS04", Path: "a.js", Line: 2, Severity: core.SeverityLow},
		{RuleID: "PY03", Path: "b.py", Line: 9, Severity: core.SeverityHigh},
		{RuleID: "JS04", Path: "b.js", Line: 1, Severity: core.SeverityLow},
	}

	report := core.NewReport(findings)

	assert.Equal(t, 4, report.Count())
	assert.Equal(t, 1, report.CountBy(core.SeverityCritical))
	assert.Equal(t, 1, report.CountBy(core.SeverityHigh))
	assert.Equal(t, 0, report.CountBy(core.SeverityMedium))
	assert.Equal(t, 2, report.CountBy(core.SeverityLow))
}

func TestReportSortsWithinBucket(t *testing.T) {
	findings := []core.Finding{
		{RuleID: "JS04", Path: "b.js", Line: 7, Severity: core.SeverityLow},
		{RuleID: "JS04", Path: "a.js", Line: 9, Severity: core.SeverityLow},
		{RuleID: "JS04", Path: "a.js", Line: 2, Severity: core.SeverityLow},
	}

	report := core.NewReport(findings)
	low := report.BySeverity(core.SeverityLow)

	assert.Equal(t, "a.js", low[0].Path)
	assert.Equal(t, 2, low[0].Line)
	assert.Equal(t, "a.js", low[1].Path)
	assert.Equal(t, 9, low[1].Line)
	assert.Equal(t, "b.js", low[2].Path)
}

func TestReportTieBreaksOnRuleID(t *testing.T) {
	// Two project-scope findings on the same descriptor share path and
	// line; rule ID decides their order however they arrived.
	forward := []core.Finding{
		{RuleID: "PR06", Path: "App/App.csproj", Severity: core.SeverityMedium},
		{RuleID: "PR07", Path: "App/App.csproj", Severity: core.SeverityMedium},
	}
	reversed := []core.Finding{forward[1], forward[0]}

	for _, findings := range [][]core.Finding{forward, reversed} {
		medium := core.NewReport(findings).BySeverity(core.SeverityMedium)
		assert.Equal(t, "PR06", medium[0].RuleID)
		assert.Equal(t, "PR07", medium[1].RuleID)
	}
}

func TestReportAllRankOrder(t *testing.T) {
	findings := []core.Finding{
		{RuleID: "X", Path: "a", Severity: core.SeverityInfo},
		{RuleID: "X", Path: "b", Severity: core.SeverityCritical},
		{RuleID: "X", Path: "c", Severity: core.SeverityMedium},
	}

	all := core.NewReport(findings).All()

	assert.Equal(t, core.SeverityCritical, all[0].Severity)
	assert.Equal(t, core.SeverityMedium, all[1].Severity)
	assert.Equal(t, core.SeverityInfo, all[2].Severity)
}

func TestReportExitCode(t *testing.T) {
	tests := []struct {
		name     string
		findings []core.Finding
		failed   bool
	}{
		{"empty", nil, false},
		{"info only", []core.Finding{{Severity: core.SeverityInfo}}, false},
		{"medium and low", []core.Finding{
			{Severity: core.SeverityMedium},
			{Severity: core.SeverityLow},
		}, false},
		{"one high", []core.Finding{{Severity: core.SeverityHigh}}, true},
		{"one critical", []core.Finding{{Severity: core.SeverityCritical}}, true},
		{"critical among noise", []core.Finding{
			{Severity: core.SeverityInfo},
			{Severity: core.SeverityCritical},
			{Severity: core.SeverityLow},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := core.NewReport(tt.findings)
			assert.Equal(t, tt.failed, report.Failed())
			if tt.failed {
				assert.Equal(t, 1, report.ExitCode())
			} else {
				assert.Equal(t, 0, report.ExitCode())
			}
		})
	}
}

func TestFindingLocation(t *testing.T) {
	assert.Equal(t, "src/app.js:12", core.Finding{Path: "src/app.js", Line: 12}.Location())
	assert.Equal(t, "src/app.js", core.Finding{Path: "src/app.js"}.Location())
	assert.Equal(t, "project", core.Finding{}.Location())
}
