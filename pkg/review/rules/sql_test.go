package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/pkg/core"
)

func TestSQLLineRules(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		rule    string
		matches bool
	}{
		{"select star", `SELECT * FROM users;`, "SQ01", true},
		{"select star lowercase", `select   * from users;`, "SQ01", true},
		{"explicit columns", `SELECT id, name FROM users;`, "SQ01", false},
		{"grant all", `GRANT ALL ON db.* TO 'app'@'%';`, "SQ02", true},
		{"grant select", `GRANT SELECT ON db.users TO 'app'@'%';`, "SQ02", false},
		{"unbounded delete", `DELETE FROM sessions;`, "SQ03", true},
		{"delete with where", `DELETE FROM sessions WHERE expires < now();`, "SQ03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := findingsByRule(analyze(t, "sql", tt.line+"\n"), tt.rule)
			if tt.matches {
				require.Len(t, findings, 1)
			} else {
				assert.Empty(t, findings)
			}
		})
	}
}

func TestSQLConcatInjection(t *testing.T) {
	t.Run("concat with no placeholders", func(t *testing.T) {
		content := "SET q = 'SELECT id FROM users WHERE name = ''' + name\n"
		findings := findingsByRule(analyze(t, "sql", content), "SQ10")
		require.Len(t, findings, 1)
		assert.Equal(t, core.SeverityCritical, findings[0].Severity)
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("single finding at first concat line", func(t *testing.T) {
		content := "a = 'x' + b\nc = 'y' + d\n"
		findings := findingsByRule(analyze(t, "sql", content), "SQ10")
		require.Len(t, findings, 1)
		assert.Equal(t, 1, findings[0].Line)
	})

	t.Run("pipe concat", func(t *testing.T) {
		content := "UPDATE t SET v = 'pre' || suffix\n"
		require.Len(t, findingsByRule(analyze(t, "sql", content), "SQ10"), 1)
	})

	t.Run("placeholder anywhere silences", func(t *testing.T) {
		content := "INSERT INTO log(msg) VALUES (@msg)\nSET x = 'a' + y\n"
		assert.Empty(t, findingsByRule(analyze(t, "sql", content), "SQ10"))
	})

	t.Run("no concat", func(t *testing.T) {
		assert.Empty(t, findingsByRule(analyze(t, "sql", "SELECT id FROM t\n"), "SQ10"))
	})
}

func TestSQLDropGuard(t *testing.T) {
	content := "DROP TABLE old_data;\nDROP TABLE IF EXISTS temp_data;\nDROP INDEX idx_name;\n"
	findings := findingsByRule(analyze(t, "sql", content), "SQ11")
	require.Len(t, findings, 2)
	assert.Equal(t, 1, findings[0].Line)
	assert.Equal(t, 3, findings[1].Line)
	for _, f := range findings {
		assert.Equal(t, core.SeverityHigh, f.Severity)
	}
}

func TestSQLTransactionCheck(t *testing.T) {
	t.Run("multiple statements unwrapped", func(t *testing.T) {
		content := "UPDATE a SET v = 1 WHERE id = 1;\nUPDATE b SET v = 2 WHERE id = 1;\n"
		findings := findingsByRule(analyze(t, "sql", content), "SQ12")
		require.Len(t, findings, 1)
		assert.Equal(t, 0, findings[0].Line, "file-level finding")
		assert.Equal(t, core.SeverityMedium, findings[0].Severity)
	})

	t.Run("wrapped in transaction", func(t *testing.T) {
		content := "BEGIN;\nUPDATE a SET v = 1 WHERE id = 1;\nUPDATE b SET v = 2 WHERE id = 1;\nCOMMIT;\n"
		assert.Empty(t, findingsByRule(analyze(t, "sql", content), "SQ12"))
	})

	t.Run("single statement", func(t *testing.T) {
		content := "UPDATE a SET v = 1 WHERE id = 1;\n"
		assert.Empty(t, findingsByRule(analyze(t, "sql", content), "SQ12"))
	})

	t.Run("comment semicolons ignored", func(t *testing.T) {
		content := "-- step one; step two;\nUPDATE a SET v = 1 WHERE id = 1;\n"
		assert.Empty(t, findingsByRule(analyze(t, "sql", content), "SQ12"))
	})
}
