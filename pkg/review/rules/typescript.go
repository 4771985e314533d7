package rules

import (
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "typescript",
		Extensions: []string{".ts", ".tsx"},
		Components: []string{".tsx"},
		Rules:      scriptRules("typescript", "TS"),
	})
}
