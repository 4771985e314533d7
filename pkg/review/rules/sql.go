package rules

import (
	"regexp"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "sql",
		Extensions: []string{".sql"},
		Rules: []review.RuleDef{
			{
				ID:          "SQ01",
				Name:        "sql.select_star",
				Group:       "convention",
				Description: "Flag SELECT * projections.",
				Severity:    core.SeverityMedium,
				Pattern:     regexp.MustCompile(`(?i)\bselect\s+\*`),
				Message:     "SELECT * couples the query to the table shape. List the columns.",
			},
			{
				ID:          "SQ02",
				Name:        "sql.grant_all",
				Group:       "security",
				Description: "Flag GRANT ALL statements.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`(?i)\bgrant\s+all\b`),
				Message:     "GRANT ALL gives more privilege than needed. Grant specific rights.",
			},
			{
				ID:          "SQ03",
				Name:        "sql.unbounded_delete",
				Group:       "correctness",
				Description: "Flag DELETE statements without a WHERE clause.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`(?i)^\s*delete\s+from\s+\S+\s*;?\s*$`),
				Message:     "DELETE without WHERE removes every row.",
			},
		},
		Structural: []review.StructuralCheck{
			{
				ID:          "SQ10",
				Name:        "sql.concat_injection",
				Group:       "security",
				Description: "Flag string concatenation with no parameter placeholders.",
				Severity:    core.SeverityCritical,
				Check:       checkSQLConcatInjection,
			},
			{
				ID:          "SQ11",
				Name:        "sql.drop_without_guard",
				Group:       "correctness",
				Description: "Flag DROP statements without IF EXISTS.",
				Severity:    core.SeverityHigh,
				Check:       checkSQLDropGuard,
			},
			{
				ID:          "SQ12",
				Name:        "sql.missing_transaction",
				Group:       "correctness",
				Description: "Flag multi-statement files without transaction demarcation.",
				Severity:    core.SeverityMedium,
				Check:       checkSQLTransaction,
			},
		},
	})
}

var (
	sqlConcatRe      = regexp.MustCompile(`['"]\s*\+|\+\s*['"]|\|\|`)
	sqlPlaceholderRe = regexp.MustCompile(`@\w+|:\w+|\$\d+|\?`)
	sqlDropRe        = regexp.MustCompile(`(?i)\bdrop\s+(table|database|index|view|procedure|schema)\b`)
	sqlIfExistsRe    = regexp.MustCompile(`(?i)\bif\s+exists\b`)
	sqlTxnRe         = regexp.MustCompile(`(?i)\b(begin|start\s+transaction|commit|rollback)\b`)
	sqlCommentRe     = regexp.MustCompile(`^\s*--`)
)

// checkSQLConcatInjection is a documented heuristic: quote-adjacent
// concatenation with no recognized parameter placeholder anywhere in the
// file suggests values are being spliced into SQL. A file concatenating
// strings for other purposes will still trip it; that trade-off is
// inherent to a textual scanner.
func checkSQLConcatInjection(fc *review.FileContext) []core.Finding {
	if sqlPlaceholderRe.MatchString(fc.Content) {
		return nil
	}
	for i, line := range fc.Lines {
		if sqlConcatRe.MatchString(line) {
			return []core.Finding{fc.Finding("SQ10", i+1, core.SeverityCritical,
				"String concatenation with no parameter placeholders anywhere in the file. Use parameterized queries.", line)}
		}
	}
	return nil
}

func checkSQLDropGuard(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for i, line := range fc.Lines {
		if sqlDropRe.MatchString(line) && !sqlIfExistsRe.MatchString(line) {
			findings = append(findings, fc.Finding("SQ11", i+1, core.SeverityHigh,
				"DROP without IF EXISTS fails when the object is missing.", line))
		}
	}
	return findings
}

// checkSQLTransaction flags files containing multiple statements but no
// transaction demarcation. Statements are counted by terminating
// semicolons on non-comment lines.
func checkSQLTransaction(fc *review.FileContext) []core.Finding {
	if sqlTxnRe.MatchString(fc.Content) {
		return nil
	}
	statements := 0
	for _, line := range fc.Lines {
		if sqlCommentRe.MatchString(line) {
			continue
		}
		statements += strings.Count(line, ";")
	}
	if statements < 2 {
		return nil
	}
	return []core.Finding{fc.Finding("SQ12", 0, core.SeverityMedium,
		"Multiple statements with no transaction demarcation. Wrap them in BEGIN/COMMIT.", "")}
}
