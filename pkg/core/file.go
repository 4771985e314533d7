package core

// FileKind distinguishes analyzable source files from project descriptor
// files that are only consumed by cross-file analyzers.
type FileKind int

// File kinds.
const (
	// FileKindSource is a file with a supported language extension.
	FileKindSource FileKind = iota
	// FileKindProject is a package manifest or framework descriptor file.
	FileKindProject
)

// FileInfo describes one discovered file. The discoverer resolves paths and
// binds the language once; downstream components never re-derive it.
type FileInfo struct {
	AbsPath   string   // Absolute path on disk
	RelPath   string   // Path relative to the scan root, slash-separated
	Ext       string   // Lowercased extension including the dot
	Language  string   // Language tag; empty for project files
	Kind      FileKind // Source vs project descriptor
	Component bool     // True for UI-component extensions (stricter size limit)
}
