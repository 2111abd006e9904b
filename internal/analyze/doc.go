// Package analyze finds annotated declarations in Go source and converts them
// into the structured form consumed by the field extractor.
//
// It uses go/parser for single files and golang.org/x/tools/go/packages for
// package patterns. Only syntax is loaded: field types are kept exactly as
// written, so nothing is resolved or canonicalized.
//
// Key types:
//   - Loader: recognizes marker directives such as //easyinit:generate
//   - SourceFile: a parsed file and its annotated declarations
package analyze
