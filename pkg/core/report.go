package core

import "sort"

// =============================================================================
// Report
// =============================================================================

// Report is the run-scoped aggregation of all findings, bucketed by severity.
// A report is owned by a single analysis run; it is built once from the
// merged finding lists returned by the analyzers and never persisted.
type Report struct {
	buckets map[Severity][]Finding
}

// NewReport creates a report from a merged finding list. Findings are
// bucketed by severity and sorted by (path, line, rule ID) within each
// bucket so output is deterministic regardless of analysis order.
func NewReport(findings []Finding) *Report {
	r := &Report{buckets: make(map[Severity][]Finding)}
	for _, f := range findings {
		r.buckets[f.Severity] = append(r.buckets[f.Severity], f)
	}
	for sev := range r.buckets {
		b := r.buckets[sev]
		sort.SliceStable(b, func(i, j int) bool {
			if b[i].Path != b[j].Path {
				return b[i].Path < b[j].Path
			}
			if b[i].Line != b[j].Line {
				return b[i].Line < b[j].Line
			}
			return b[i].RuleID < b[j].RuleID
		})
	}
	return r
}

// BySeverity returns the ordered findings for one severity bucket.
func (r *Report) BySeverity(sev Severity) []Finding {
	return r.buckets[sev]
}

// All returns every finding in severity rank order.
func (r *Report) All() []Finding {
	var out []Finding
	for _, sev := range Severities {
		out = append(out, r.buckets[sev]...)
	}
	return out
}

// Count returns the total number of findings.
func (r *Report) Count() int {
	n := 0
	for _, b := range r.buckets {
		n += len(b)
	}
	return n
}

// CountBy returns the number of findings at one severity.
func (r *Report) CountBy(sev Severity) int {
	return len(r.buckets[sev])
}

// Failed reports whether the run should be treated as a failure.
// Any critical or high finding fails the run; medium and low findings
// are warnings only.
func (r *Report) Failed() bool {
	return r.CountBy(SeverityCritical) > 0 || r.CountBy(SeverityHigh) > 0
}

// ExitCode derives the process exit status from the severity counts.
func (r *Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}
