package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/cli/config"
	"github.com/revet-dev/revet/internal/cli/output"
	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
	_ "github.com/revet-dev/revet/pkg/review/project/rules" // register project rules
	_ "github.com/revet-dev/revet/pkg/review/rules"         // register language rules
)

// ScanOptions holds options for the scan command.
type ScanOptions struct {
	Path              string   // Project root to scan
	Format            string   // Output format: text, markdown, json
	Disable           []string // Rule IDs to disable
	Severity          string   // Minimum severity to display
	MaxFileLines      int      // Override file size threshold
	MaxComponentLines int      // Override component size threshold
	Watch             bool     // Rescan on file changes
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a project tree for review findings",
		Long: `Walk a project tree, classify files by language, and apply
per-language rules, structural checks, and cross-file project rules.

Findings are grouped by severity, worst first. The command exits
non-zero when any critical or high finding is present, so it can gate
CI pipelines directly.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Scan the current directory
  revet scan

  # Scan a specific project
  revet scan ./frontend

  # Output as JSON
  revet scan --format json

  # Disable specific rules
  revet scan --disable JS04,CS01

  # Show everything down to informational findings
  revet scan --severity info

  # Rescan whenever files change
  revet scan --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runScan(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "low", "Minimum severity to display: critical, high, medium, low, info")
	cmd.Flags().IntVar(&opts.MaxFileLines, "max-file-lines", 0, "Line count above which a file is flagged")
	cmd.Flags().IntVar(&opts.MaxComponentLines, "max-component-lines", 0, "Line count above which a component is flagged")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rescan whenever files under the root change")

	return cmd
}

func runScan(cmd *cobra.Command, opts *ScanOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	reviewCfg := buildReviewConfig(cfg, opts)
	runner := review.NewRunner(reviewCfg, cmdCtx.Logger)

	if opts.Watch {
		return runWatch(cmd.Context(), runner, reviewCfg, r, opts)
	}

	result, err := runner.Run(cmd.Context(), opts.Path)
	if err != nil {
		return err
	}

	renderScanResult(r, result, opts)

	if result.Report.Failed() {
		return fmt.Errorf("review failed: %d critical, %d high findings",
			result.Report.CountBy(core.SeverityCritical),
			result.Report.CountBy(core.SeverityHigh))
	}
	return nil
}

// buildReviewConfig merges project config with CLI overrides, flags last.
func buildReviewConfig(cfg *config.Config, opts *ScanOptions) *review.Config {
	reviewCfg := cfg.ReviewConfig()

	if opts.MaxFileLines > 0 {
		reviewCfg.MaxFileLines = opts.MaxFileLines
	}
	if opts.MaxComponentLines > 0 {
		reviewCfg.MaxComponentLines = opts.MaxComponentLines
	}
	for _, id := range opts.Disable {
		reviewCfg.Disable(strings.TrimSpace(id))
	}
	return reviewCfg
}

// displayThreshold resolves the --severity flag. Unknown values fall back
// to low, which hides informational findings.
func displayThreshold(s string) core.Severity {
	if sev, ok := core.ParseSeverity(s); ok {
		return sev
	}
	return core.SeverityLow
}

func renderScanResult(r *output.Renderer, result *review.Result, opts *ScanOptions) {
	threshold := displayThreshold(opts.Severity)
	mode := r.EffectiveMode()

	if mode == output.ModeJSON {
		_ = r.JSON(buildScanOutput(result, threshold))
		return
	}

	report := result.Report
	shown := 0
	for _, sev := range core.Severities {
		if sev > threshold {
			continue
		}
		findings := report.BySeverity(sev)
		if len(findings) == 0 {
			continue
		}
		shown += len(findings)

		r.Println(r.Styles().Severity(sev).Render(strings.ToUpper(sev.String())))
		for _, f := range findings {
			r.Printf("  %s  %s  %s\n",
				r.Styles().FilePath.Render(fmt.Sprintf("%-40s", f.Location())),
				r.Styles().Bold.Render(f.RuleID),
				f.Message,
			)
			if f.Excerpt != "" {
				r.Printf("      %s\n", r.Styles().Muted.Render(f.Excerpt))
			}
		}
		r.Println("")
	}

	if report.Count() == 0 {
		r.Success("No findings")
	} else if shown == 0 {
		r.Printf("No findings at or above %s severity (%d total)\n", threshold, report.Count())
	} else if hidden := report.Count() - shown; hidden > 0 {
		r.Printf("%d findings below %s severity not shown\n", hidden, threshold)
	}

	renderSummaryTable(r, result, mode)
}

// renderSummaryTable prints per-severity counts plus scan metadata.
func renderSummaryTable(r *output.Renderer, result *review.Result, mode output.Mode) {
	report := result.Report

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", "Count"})
	for _, sev := range core.Severities {
		t.AppendRow(table.Row{sev.String(), report.CountBy(sev)})
	}
	t.AppendFooter(table.Row{"total", report.Count()})

	if mode == output.ModeMarkdown {
		r.Println(t.RenderMarkdown())
	} else {
		r.Println(t.Render())
	}
	r.Printf("Scanned %d files in %s\n", len(result.Files), result.Duration.Round(time.Millisecond))
}

func buildScanOutput(result *review.Result, threshold core.Severity) output.ScanOutput {
	report := result.Report
	out := output.ScanOutput{
		RunID: result.RunID,
		Root:  result.Root,
		Summary: output.ScanSummary{
			FilesScanned:  len(result.Files),
			TotalFindings: report.Count(),
			Critical:      report.CountBy(core.SeverityCritical),
			High:          report.CountBy(core.SeverityHigh),
			Medium:        report.CountBy(core.SeverityMedium),
			Low:           report.CountBy(core.SeverityLow),
			Info:          report.CountBy(core.SeverityInfo),
			Duration:      result.Duration.Round(time.Millisecond).String(),
		},
		Failed: report.Failed(),
	}
	for _, f := range report.All() {
		if f.Severity > threshold {
			continue
		}
		out.Findings = append(out.Findings, output.ScanFinding{
			RuleID:   f.RuleID,
			Severity: f.Severity.String(),
			Path:     f.Path,
			Line:     f.Line,
			Message:  f.Message,
			Excerpt:  f.Excerpt,
		})
	}
	return out
}

// watchDebounce batches the burst of events an editor save produces into
// a single rescan.
const watchDebounce = 300 * time.Millisecond

// runWatch scans once, then rescans whenever something under the root
// changes. Watch mode never exits non-zero on findings; it runs until
// the context is cancelled.
func runWatch(ctx context.Context, runner *review.Runner, cfg *review.Config, r *output.Renderer, opts *ScanOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	absRoot, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", opts.Path, err)
	}
	if err := addWatchDirs(watcher, absRoot, cfg); err != nil {
		return err
	}

	scan := func() {
		result, err := runner.Run(ctx, opts.Path)
		if err != nil {
			r.Errorf("scan failed: %v\n", err)
			return
		}
		renderScanResult(r, result, opts)
	}

	scan()
	r.Printf("Watching %s for changes...\n", absRoot)

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories must be watched as they appear.
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addWatchDirs(watcher, ev.Name, cfg)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch error: %v\n", err)
		case <-pending:
			scan()
			r.Printf("Watching %s for changes...\n", absRoot)
		}
	}
}

// addWatchDirs registers every directory under root that a scan would
// visit, applying the same exclusion list the discoverer uses.
func addWatchDirs(watcher *fsnotify.Watcher, root string, cfg *review.Config) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && review.IsExcludedDir(d.Name(), cfg) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
