// Package diagnostic provides structured errors, warnings and notes for the
// initializer generator.
//
// Diagnostics are attached to the offending declaration's source position so
// they read like compiler output:
//
//	types.go:12:2: [EI003] Main.Value: field has no type annotation
package diagnostic
