package output

// ScanOutput is the machine-readable scan result.
type ScanOutput struct {
	RunID    string        `json:"run_id"`
	Root     string        `json:"root"`
	Summary  ScanSummary   `json:"summary"`
	Findings []ScanFinding `json:"findings"`
	Failed   bool          `json:"failed"`
}

// ScanSummary holds aggregate counts for a scan.
type ScanSummary struct {
	FilesScanned  int    `json:"files_scanned"`
	TotalFindings int    `json:"total_findings"`
	Critical      int    `json:"critical"`
	High          int    `json:"high"`
	Medium        int    `json:"medium"`
	Low           int    `json:"low"`
	Info          int    `json:"info"`
	Duration      string `json:"duration"`
}

// ScanFinding is one finding in JSON output.
type ScanFinding struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Excerpt  string `json:"excerpt,omitempty"`
}

// RuleListOutput is the machine-readable rule listing.
type RuleListOutput struct {
	Count int             `json:"count"`
	Rules []RuleListEntry `json:"rules"`
}

// RuleListEntry is one rule in JSON output.
type RuleListEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Language    string `json:"language,omitempty"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
}
