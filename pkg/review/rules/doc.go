// Package rules contains the built-in language profiles.
// Import this package to register all profiles with the review registry:
//
//	import _ "github.com/revet-dev/revet/pkg/review/rules"
//
// Profiles are registered via init() functions when this package is
// imported. Each language file registers one LanguageProfile bundling the
// extensions it claims, its line rules, and its structural checks:
//
//   - javascript.go: JS01-JS08 line rules (.js, .mjs, .cjs, .jsx, .vue)
//   - typescript.go: TS01-TS08 line rules (.ts, .tsx)
//   - python.go:     PY01-PY05 line rules, PY10/PY11 structural checks
//   - html.go:       HT01/HT02 line rules, HT10-HT12 structural checks
//   - css.go:        CSS01/CSS02 line rules
//   - sql.go:        SQ01-SQ03 line rules, SQ10-SQ12 structural checks
//   - csharp.go:     CS01-CS03 line rules, CS10-CS14 structural checks
//
// The rules are textual heuristics. Several of them (the SQL
// injection heuristic in particular) accept false positives in exchange
// for not needing a parser.
package rules
