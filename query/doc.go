// Package query filters store entries with boolean expressions.
//
// Expressions use the expr language (github.com/expr-lang/expr) and are
// evaluated against an [Entry]:
//
//	Value == "v" && Depth > 1
//	under(Path, "/etc") && Name startsWith "host"
//	len(segments(Path)) == 2
//
// Besides the expr builtins, two functions are available:
//   - segments(path) returns the non-empty segments of path
//   - under(path, prefix) reports whether path is prefix or lies below it
package query
