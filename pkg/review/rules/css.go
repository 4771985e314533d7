package rules

import (
	"regexp"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "css",
		Extensions: []string{".css"},
		Rules: []review.RuleDef{
			{
				ID:          "CSS01",
				Name:        "css.important",
				Group:       "style",
				Description: "Flag !important declarations.",
				Severity:    core.SeverityLow,
				Pattern:     regexp.MustCompile(`!important`),
				Message:     "!important defeats the cascade. Raise specificity instead.",
			},
			{
				ID:          "CSS02",
				Name:        "css.import",
				Group:       "performance",
				Description: "Flag @import directives.",
				Severity:    core.SeverityLow,
				Pattern:     regexp.MustCompile(`@import\s`),
				Message:     "@import serializes stylesheet loading. Use link tags or a bundler.",
			},
		},
	})
}
