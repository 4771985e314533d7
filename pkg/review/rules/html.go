package rules

import (
	"regexp"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func init() {
	review.RegisterProfile(&review.LanguageProfile{
		Language:   "html",
		Extensions: []string{".html", ".htm"},
		Rules: []review.RuleDef{
			{
				ID:          "HT01",
				Name:        "html.inline_handler",
				Group:       "style",
				Description: "Flag inline event handler attributes.",
				Severity:    core.SeverityMedium,
				Pattern:     regexp.MustCompile(`\son(click|change|load|submit|mouseover|keyup|keydown|input)\s*=\s*["']`),
				Message:     "Inline event handlers mix markup and behavior. Attach listeners in script.",
			},
			{
				ID:          "HT02",
				Name:        "html.insecure_resource",
				Group:       "security",
				Description: "Flag resources loaded over plain HTTP.",
				Severity:    core.SeverityHigh,
				Pattern:     regexp.MustCompile(`(src|href)\s*=\s*["']http://`),
				Message:     "Resource loaded over plain HTTP. Use HTTPS.",
			},
		},
		Structural: []review.StructuralCheck{
			{
				ID:          "HT10",
				Name:        "html.missing_doctype",
				Group:       "accessibility",
				Description: "Flag documents without a doctype declaration.",
				Severity:    core.SeverityMedium,
				Check:       checkHTMLDoctype,
			},
			{
				ID:          "HT11",
				Name:        "html.img_missing_alt",
				Group:       "accessibility",
				Description: "Flag every img tag without an alt attribute.",
				Severity:    core.SeverityMedium,
				Check:       checkHTMLImgAlt,
			},
			{
				ID:          "HT12",
				Name:        "html.input_without_label",
				Group:       "accessibility",
				Description: "Flag input ids with no corresponding label for-reference.",
				Severity:    core.SeverityMedium,
				Check:       checkHTMLInputLabels,
			},
		},
	})
}

var (
	htmlImgRe      = regexp.MustCompile(`(?is)<img\b[^>]*>`)
	htmlAltAttrRe  = regexp.MustCompile(`(?i)\balt\s*=`)
	htmlInputIDRe  = regexp.MustCompile(`(?is)<input\b[^>]*\bid\s*=\s*["']([^"']+)["'][^>]*>`)
	htmlLabelForRe = regexp.MustCompile(`(?is)<label\b[^>]*\bfor\s*=\s*["']([^"']+)["']`)
)

func checkHTMLDoctype(fc *review.FileContext) []core.Finding {
	if strings.Contains(strings.ToLower(fc.Content), "<!doctype") {
		return nil
	}
	return []core.Finding{fc.Finding("HT10", 0, core.SeverityMedium,
		"Document has no doctype declaration.", "")}
}

// checkHTMLImgAlt flags every img tag lacking an alt attribute, not just
// the first. Matching runs over the full content so tags spanning lines
// are still found; the finding points at the line the tag starts on.
func checkHTMLImgAlt(fc *review.FileContext) []core.Finding {
	var findings []core.Finding
	for _, loc := range htmlImgRe.FindAllStringIndex(fc.Content, -1) {
		tag := fc.Content[loc[0]:loc[1]]
		if htmlAltAttrRe.MatchString(tag) {
			continue
		}
		findings = append(findings, fc.Finding("HT11", lineAt(fc.Content, loc[0]), core.SeverityMedium,
			"Image has no alt attribute.", tag))
	}
	return findings
}

// checkHTMLInputLabels accumulates all input ids and all label targets
// across the whole file, then reports the set difference.
func checkHTMLInputLabels(fc *review.FileContext) []core.Finding {
	labeled := make(map[string]bool)
	for _, m := range htmlLabelForRe.FindAllStringSubmatch(fc.Content, -1) {
		labeled[m[1]] = true
	}

	var findings []core.Finding
	for _, loc := range htmlInputIDRe.FindAllStringSubmatchIndex(fc.Content, -1) {
		id := fc.Content[loc[2]:loc[3]]
		if labeled[id] {
			continue
		}
		findings = append(findings, fc.Finding("HT12", lineAt(fc.Content, loc[0]), core.SeverityMedium,
			"Input '"+id+"' has no label referencing it.", fc.Content[loc[0]:loc[1]]))
	}
	return findings
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(content string, offset int) int {
	return strings.Count(content[:offset], "\n") + 1
}
