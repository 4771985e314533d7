package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/cli/output"
	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
	"github.com/revet-dev/revet/pkg/review/project"
	_ "github.com/revet-dev/revet/pkg/review/project/rules" // register project rules
	_ "github.com/revet-dev/revet/pkg/review/rules"         // register language rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Language string // Filter by language
	Group    string // Filter by group
	Type     string // Filter by type: line, structural, project
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available review rules",
		Long: `List every registered review rule with its language, group, and
default severity. Pass a rule ID to see its full description.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  revet rules

  # Show details for a specific rule
  revet rules JS01

  # List python rules only
  revet rules --language python

  # List cross-file project rules
  revet rules --type project

  # Output as JSON
  revet rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Language, "language", "l", "", "Filter by language")
	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Filter by type: line, structural, project")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

// allRules collects every registered rule: per-language line and
// structural rules, the built-in size and IO rules, and project rules.
func allRules() []core.RuleInfo {
	rules := review.AllRules()
	rules = append(rules, review.BuiltinRules...)
	rules = append(rules, project.AllRules()...)

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Language != rules[j].Language {
			return rules[i].Language < rules[j].Language
		}
		return rules[i].ID < rules[j].ID
	})
	return rules
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rules := filterRulesByOptions(allRules(), opts)

	if r.EffectiveMode() == output.ModeJSON {
		return listRulesJSON(r, rules)
	}
	return listRulesTable(r, rules)
}

func filterRulesByOptions(rules []core.RuleInfo, opts *RulesOptions) []core.RuleInfo {
	if opts.Language == "" && opts.Group == "" && opts.Type == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, r := range rules {
		if opts.Language != "" && r.Language != opts.Language {
			continue
		}
		if opts.Group != "" && r.Group != opts.Group {
			continue
		}
		if opts.Type != "" && r.Type != opts.Type {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func listRulesTable(r *output.Renderer, rules []core.RuleInfo) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Language", "Type", "Severity"})
	for _, rule := range rules {
		lang := rule.Language
		if lang == "" {
			lang = "-"
		}
		t.AppendRow(table.Row{rule.ID, rule.Name, lang, rule.Type, rule.DefaultSeverity.String()})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		r.Println(t.Render())
	}
	r.Printf("%d rules\n", len(rules))
	return nil
}

func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	out := output.RuleListOutput{Count: len(rules)}
	for _, rule := range rules {
		out.Rules = append(out.Rules, ruleListEntry(rule))
	}
	return r.JSON(out)
}

func ruleListEntry(rule core.RuleInfo) output.RuleListEntry {
	return output.RuleListEntry{
		ID:          rule.ID,
		Name:        rule.Name,
		Group:       rule.Group,
		Language:    rule.Language,
		Type:        rule.Type,
		Severity:    rule.DefaultSeverity.String(),
		Description: rule.Description,
	}
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var rule *core.RuleInfo
	for _, ri := range allRules() {
		if ri.ID == ruleID {
			rule = &ri
			break
		}
	}
	if rule == nil {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(ruleListEntry(*rule))
	case output.ModeMarkdown:
		return showRuleMarkdown(r, rule)
	default:
		return showRuleText(r, rule)
	}
}

func showRuleText(r *output.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Bold.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	if rule.Language != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Language"), rule.Language)
	}
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Type"), rule.Type)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"),
		styles.Severity(rule.DefaultSeverity).Render(rule.DefaultSeverity.String()))
	r.Println("")

	if rule.Description != "" {
		r.Println("  " + rule.Description)
		r.Println("")
	}
	return nil
}

func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	if rule.Language != "" {
		r.Printf("**Language:** %s | ", rule.Language)
	}
	r.Printf("**Group:** %s | **Type:** %s | **Severity:** `%s`\n\n",
		rule.Group, rule.Type, rule.DefaultSeverity.String())
	if rule.Description != "" {
		r.Println(rule.Description)
		r.Println("")
	}
	return nil
}
