// Package errors provides structured, coded errors for the renderer and the
// vdomctl tool.
//
// Each error has a unique code (e.g., "E201") that maps to a short message,
// a detailed explanation and, where useful, a suggestion:
//
//	err := errors.New("E201").WithNode("Counter")
//	fmt.Println(err) // E201: Malformed node type (Counter)
//
// # Error Categories
//
//   - tree: malformed virtual trees (unknown node types, non-callable handlers)
//   - runtime: lifecycle failures detected while rendering
//   - config: configuration file problems
//   - cli: tree file and command line problems
//
// Format renders an error for terminal display, FormatCompact on one line and
// FormatJSON as a JSON object.
package errors
