package core

import "strings"

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a finding.
// Lower values are more severe, so thresholds can be applied with <=.
type Severity int

// Severity levels for findings.
const (
	// SeverityCritical indicates an issue that must be fixed before merge.
	SeverityCritical Severity = iota
	// SeverityHigh indicates a serious issue that fails the run.
	SeverityHigh
	// SeverityMedium indicates an issue that should be reviewed.
	SeverityMedium
	// SeverityLow indicates a minor issue.
	SeverityLow
	// SeverityInfo indicates informational feedback.
	SeverityInfo
)

// Severities lists all levels in rank order, most severe first.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityMedium and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "critical":
		return SeverityCritical, true
	case "high":
		return SeverityHigh, true
	case "medium":
		return SeverityMedium, true
	case "low":
		return SeverityLow, true
	case "info":
		return SeverityInfo, true
	default:
		return SeverityMedium, false
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their names in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
