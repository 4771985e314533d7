package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revet-dev/revet/pkg/core"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  core.Severity
		want string
	}{
		{core.SeverityCritical, "critical"},
		{core.SeverityHigh, "high"},
		{core.SeverityMedium, "medium"},
		{core.SeverityLow, "low"},
		{core.SeverityInfo, "info"},
		{core.Severity(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sev.String())
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   core.Severity
		wantOK bool
	}{
		{"critical", core.SeverityCritical, true},
		{"CRITICAL", core.SeverityCritical, true},
		{"High", core.SeverityHigh, true},
		{"medium", core.SeverityMedium, true},
		{"low", core.SeverityLow, true},
		{"info", core.SeverityInfo, true},
		{"", core.SeverityMedium, false},
		{"bogus", core.SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := core.ParseSeverity(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverityOrdering(t *testing.T) {
	// More severe levels compare lower, so threshold filtering can use <=.
	assert.Less(t, int(core.SeverityCritical), int(core.SeverityHigh))
	assert.Less(t, int(core.SeverityHigh), int(core.SeverityMedium))
	assert.Less(t, int(core.SeverityMedium), int(core.SeverityLow))
	assert.Less(t, int(core.SeverityLow), int(core.SeverityInfo))
}
