package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

func TestRunnerRun(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/dirty.tl": "#header\neval(payload)\n",
		"src/clean.tl": "#header\nx = 1\n",
		"lib/noisy.tl": "#header\nprint(a)\nprint(b)\n",
	})

	result, err := review.NewRunner(nil, nil).Run(context.Background(), root)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Len(t, result.Files, 3)

	report := result.Report
	assert.Equal(t, 3, report.Count())
	assert.Equal(t, 1, report.CountBy(core.SeverityCritical))
	assert.Equal(t, 2, report.CountBy(core.SeverityLow))
	assert.True(t, report.Failed())
	assert.Equal(t, 1, report.ExitCode())
}

func TestRunnerDeterministicAcrossRuns(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.tl": "print(1)\nprint(2)\n",
		"b.tl": "eval(x)\n",
		"c.tl": "print(3)\n",
	})

	cfg := review.NewConfig()
	cfg.Workers = 4
	runner := review.NewRunner(cfg, nil)

	first, err := runner.Run(context.Background(), root)
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, first.Report.All(), second.Report.All())
}

func TestRunnerDisabledRule(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.tl": "#header\neval(x)\nprint(y)\n",
	})

	cfg := review.NewConfig().Disable("TL01")
	result, err := review.NewRunner(cfg, nil).Run(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Report.Count())
	assert.False(t, result.Report.Failed())
}

func TestRunnerEmptyTree(t *testing.T) {
	registerTestProfile(t)

	result, err := review.NewRunner(nil, nil).Run(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Report.Count())
	assert.Equal(t, 0, result.Report.ExitCode())
}

func TestRunnerMissingRoot(t *testing.T) {
	registerTestProfile(t)

	_, err := review.NewRunner(nil, nil).Run(context.Background(), "/definitely/not/here")
	require.Error(t, err)
}
