package review

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review/project"
)

// Runner orchestrates one full scan: discovery, parallel per-file analysis,
// project-level analysis, and aggregation into a single report.
type Runner struct {
	config *Config
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards scan logging.
func NewRunner(config *Config, logger *slog.Logger) *Runner {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{config: config, logger: logger}
}

// Result holds the outcome of one scan.
type Result struct {
	RunID    string
	Root     string // Absolute scan root
	Files    []core.FileInfo
	Report   *core.Report
	Duration time.Duration
}

// Run executes a full scan of the tree under root. Only a missing root is
// fatal; every recoverable problem is recorded as a finding in the report.
//
// Per-file analysis runs in parallel. Each file's analysis is independent
// and returns its own finding list; the lists are merged once at the end
// and the report sorts findings by (path, line) within each severity
// bucket, so the output is deterministic regardless of scheduling.
func (r *Runner) Run(ctx context.Context, root string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := r.logger.With("run_id", runID)

	files, err := Discover(root, r.config)
	if err != nil {
		return nil, err
	}
	absRoot, _ := filepath.Abs(root)
	logger.Info("discovery complete", "root", absRoot, "files", len(files))

	analyzer := NewAnalyzer(r.config)

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	perFile := make([][]core.Finding, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		i, file := i, file
		if file.Kind != core.FileKindSource {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perFile[i] = analyzer.AnalyzeFile(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []core.Finding
	for _, fs := range perFile {
		findings = append(findings, fs...)
	}

	projAnalyzer := project.NewAnalyzer(&project.AnalyzerConfig{
		DisabledRules:     r.config.DisabledRules,
		SeverityOverrides: r.config.SeverityOverrides,
	})
	findings = append(findings, projAnalyzer.Analyze(project.NewContext(absRoot, files))...)

	report := core.NewReport(findings)
	logger.Info("scan complete",
		"files", len(files),
		"findings", report.Count(),
		"failed", report.Failed(),
		"duration", time.Since(start).Round(time.Millisecond))

	return &Result{
		RunID:    runID,
		Root:     absRoot,
		Files:    files,
		Report:   report,
		Duration: time.Since(start),
	}, nil
}
