// Package rules contains the built-in project-level rules.
// Import this package to register them with the project registry:
//
//	import _ "github.com/revet-dev/revet/pkg/review/project/rules"
//
// Project rules run once per scan over the whole discovered file set:
//
//   - PR01: duplicate service artifacts across the tree
//   - PR02: no test files anywhere in the project
//   - PR03/PR04/PR05: package manifest inspection (lint tooling, test
//     framework, parse failures)
//   - PR06/PR07/PR08/PR09: .NET project descriptors (target framework,
//     nullable configuration, hardcoded secrets in configuration, parse
//     failures)
package rules
