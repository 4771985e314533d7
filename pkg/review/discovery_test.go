package review_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/pkg/core"
	"github.com/revet-dev/revet/pkg/review"
)

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func relPaths(files []core.FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestDiscoverClassifiesByExtension(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.tl":  "x\n",
		"src/ui.tlx":  "x\n",
		"src/app.TL":  "x\n", // extension match is case-insensitive
		"readme.md":   "ignored\n",
		"src/data.go": "ignored\n",
	})

	files, err := review.Discover(root, nil)
	require.NoError(t, err)

	paths := relPaths(files)
	assert.ElementsMatch(t, []string{"src/app.tl", "src/ui.tlx", "src/app.TL"}, paths)

	for _, f := range files {
		assert.Equal(t, "testlang", f.Language)
		assert.Equal(t, core.FileKindSource, f.Kind)
		if f.RelPath == "src/ui.tlx" {
			assert.True(t, f.Component)
		} else {
			assert.False(t, f.Component)
		}
	}
}

func TestDiscoverSkipsExcludedDirs(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/app.tl":             "x\n",
		"node_modules/dep.tl":    "x\n",
		".git/hooks/a.tl":        "x\n",
		"vendor/lib.tl":          "x\n",
		"custom/generated.tl":    "x\n",
		"src/deep/build/out.tl":  "x\n",
		"src/deep/keep/keep.tl":  "x\n",
	})

	cfg := review.NewConfig()
	cfg.ExcludeDirs = []string{"custom"}

	files, err := review.Discover(root, cfg)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/app.tl", "src/deep/keep/keep.tl"}, relPaths(files))
}

func TestDiscoverCollectsProjectFiles(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":             "{}",
		"App/App.csproj":           "<Project/>",
		"App/appsettings.json":     "{}",
		"App/appsettings.Dev.json": "{}",
		"App/web.config":           "<configuration/>",
		"other.json":               "{}",
	})

	files, err := review.Discover(root, nil)
	require.NoError(t, err)

	for _, f := range files {
		assert.Equal(t, core.FileKindProject, f.Kind)
	}
	assert.ElementsMatch(t, []string{
		"package.json",
		"App/App.csproj",
		"App/appsettings.json",
		"App/appsettings.Dev.json",
		"App/web.config",
	}, relPaths(files))
}

func TestDiscoverDeterministicOrder(t *testing.T) {
	registerTestProfile(t)
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b/two.tl":   "x\n",
		"a/one.tl":   "x\n",
		"c/three.tl": "x\n",
	})

	first, err := review.Discover(root, nil)
	require.NoError(t, err)
	second, err := review.Discover(root, nil)
	require.NoError(t, err)

	assert.Equal(t, relPaths(first), relPaths(second))
	assert.Equal(t, []string{"a/one.tl", "b/two.tl", "c/three.tl"}, relPaths(first))
}

func TestDiscoverMissingRoot(t *testing.T) {
	registerTestProfile(t)
	_, err := review.Discover(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestIsExcludedDir(t *testing.T) {
	cfg := review.NewConfig()
	cfg.ExcludeDirs = []string{"generated"}

	assert.True(t, review.IsExcludedDir("node_modules", nil))
	assert.True(t, review.IsExcludedDir(".git", cfg))
	assert.True(t, review.IsExcludedDir("generated", cfg))
	assert.False(t, review.IsExcludedDir("generated", nil))
	assert.False(t, review.IsExcludedDir("src", cfg))
}
