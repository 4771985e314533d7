package review

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
)

// excludedDirs is the fixed directory deny-list: dependency caches, build
// output, VCS and IDE metadata, and the scanner's own state directory.
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"bin":          true,
	"obj":          true,
	"target":       true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".idea":        true,
	".vscode":      true,
	"coverage":     true,
	".next":        true,
	".revet":       true,
}

// projectFileNames are descriptor files collected for cross-file analyzers
// regardless of the language extension allow-list.
var projectFileNames = map[string]bool{
	"package.json": true,
	"web.config":   true,
}

// IsExcludedDir reports whether a directory name is on the deny-list,
// including any extra names carried by the config. Used by the discoverer
// and by the watch loop, which must skip the same subtrees.
func IsExcludedDir(name string, cfg *Config) bool {
	if excludedDirs[name] {
		return true
	}
	if cfg != nil {
		for _, d := range cfg.ExcludeDirs {
			if d == name {
				return true
			}
		}
	}
	return false
}

// isProjectFile reports whether a base name identifies a package manifest
// or framework descriptor.
func isProjectFile(name string) bool {
	lower := strings.ToLower(name)
	if projectFileNames[lower] {
		return true
	}
	if strings.HasSuffix(lower, ".csproj") {
		return true
	}
	return strings.HasPrefix(lower, "appsettings") && strings.HasSuffix(lower, ".json")
}

// Discover walks the tree under root and returns every file whose extension
// is claimed by a registered language profile, plus known project descriptor
// files. WalkDir visits directory entries in lexical order, so the result is
// deterministic for a given tree. Only a missing root is fatal; directories
// that vanish or cannot be read mid-walk are treated as empty.
func Discover(root string, cfg *Config) ([]core.FileInfo, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("project root %s does not exist: %w", root, err)
	}

	var files []core.FileInfo
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			return nil // unreadable subtree, treat as empty
		}
		if d.IsDir() {
			name := d.Name()
			if path != absRoot && IsExcludedDir(name, cfg) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		ext := strings.ToLower(filepath.Ext(path))

		if isProjectFile(d.Name()) {
			files = append(files, core.FileInfo{
				AbsPath: path,
				RelPath: rel,
				Ext:     ext,
				Kind:    core.FileKindProject,
			})
			return nil
		}

		lang, ok := Classify(ext)
		if !ok {
			return nil
		}
		files = append(files, core.FileInfo{
			AbsPath:   path,
			RelPath:   rel,
			Ext:       ext,
			Language:  lang,
			Kind:      core.FileKindSource,
			Component: IsComponentExt(lang, ext),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}
	return files, nil
}
