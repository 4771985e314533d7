// Package main provides a generator that extracts rule metadata from the
// registries and generates markdown documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -outdir=docs
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revet-dev/revet/pkg/review"
	"github.com/revet-dev/revet/pkg/review/project"
	_ "github.com/revet-dev/revet/pkg/review/project/rules"
	_ "github.com/revet-dev/revet/pkg/review/rules"
)

var outDirFlag = flag.String("outdir", "docs", "output directory")

func main() {
	flag.Parse()

	if err := generateRuleDocs(*outDirFlag); err != nil {
		log.Fatalf("failed to generate rule docs: %v", err)
	}
}

func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := review.AllRules()
	rules = append(rules, review.BuiltinRules...)
	rules = append(rules, project.AllRules()...)
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Language != rules[j].Language {
			return rules[i].Language < rules[j].Language
		}
		return rules[i].ID < rules[j].ID
	})

	var b strings.Builder
	b.WriteString("# Rules\n\n")
	b.WriteString("<!-- Generated by scripts/gendocs. Do not edit by hand. -->\n\n")
	b.WriteString(fmt.Sprintf("revet ships %d rules.\n\n", len(rules)))

	section := ""
	for _, r := range rules {
		lang := r.Language
		if lang == "" {
			lang = "cross-file"
		}
		if lang != section {
			section = lang
			b.WriteString("## " + section + "\n\n")
			b.WriteString("| ID | Name | Type | Severity | Description |\n")
			b.WriteString("|----|------|------|----------|-------------|\n")
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			r.ID, r.Name, r.Type, r.DefaultSeverity.String(), r.Description))
	}

	path := filepath.Join(outDir, "rules.md")
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("  Generated rules.md (%d rules)", len(rules))
	return nil
}
