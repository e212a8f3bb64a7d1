// Package rules provides the built-in check implementations for javalint.
//
// Checks are organized by category:
//   - blocks: checks about brace and block usage (LeftCurly, NeedBraces,
//     AvoidNestedBlocks)
//
// To register all checks with the global registry, import this package
// with a blank identifier:
//
//	import _ "github.com/javalint/javalint/pkg/lint/rules"
//
// Individual categories can also be imported:
//
//	import _ "github.com/javalint/javalint/pkg/lint/rules/blocks"
package rules
