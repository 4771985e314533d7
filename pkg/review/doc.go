// Package review implements the static-analysis engine: file discovery,
// language classification, per-file rule application and scan orchestration.
//
// The engine is deliberately a textual scanner. Rules are regex line
// predicates or whole-file structural heuristics; there is no parsing or
// semantic analysis. Language support is registered as LanguageProfiles
// (see the rules package), and cross-file analyzers live in the project
// subpackage.
package review
