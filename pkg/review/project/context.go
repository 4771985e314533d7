package project

import (
	"os"
	"strings"

	"github.com/revet-dev/revet/pkg/core"
)

// Context provides the discovered file set to project-level rules.
// Rules read through it rather than re-walking the tree, so the whole
// scan observes one consistent snapshot.
type Context struct {
	Root  string // Absolute scan root
	Files []core.FileInfo
}

// NewContext creates a project context for one analysis run.
func NewContext(root string, files []core.FileInfo) *Context {
	return &Context{Root: root, Files: files}
}

// SourceFiles returns the discovered source files.
func (c *Context) SourceFiles() []core.FileInfo {
	var out []core.FileInfo
	for _, f := range c.Files {
		if f.Kind == core.FileKindSource {
			out = append(out, f)
		}
	}
	return out
}

// ByName returns all discovered files whose base name matches
// (case-insensitive).
func (c *Context) ByName(name string) []core.FileInfo {
	name = strings.ToLower(name)
	var out []core.FileInfo
	for _, f := range c.Files {
		if strings.ToLower(baseName(f.RelPath)) == name {
			out = append(out, f)
		}
	}
	return out
}

// ByExt returns all discovered files with the given extension.
func (c *Context) ByExt(ext string) []core.FileInfo {
	ext = strings.ToLower(ext)
	var out []core.FileInfo
	for _, f := range c.Files {
		if f.Ext == ext {
			out = append(out, f)
		}
	}
	return out
}

// ReadFile reads one discovered file's content.
func (c *Context) ReadFile(f core.FileInfo) (string, error) {
	data, err := os.ReadFile(f.AbsPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func baseName(relPath string) string {
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}
