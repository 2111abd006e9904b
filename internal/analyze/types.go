package analyze

import (
	"go/ast"
	"go/token"

	"easyinit/internal/syntax"
)

// SourceFile is a parsed Go file together with the declarations in it that
// carry a generation marker.
type SourceFile struct {
	Path    string         // File path as reported by the file set
	Package string         // Package name from the package clause
	Fset    *token.FileSet // File set positions in File refer to
	File    *ast.File      // Parsed file, with comments
	Decls   []*syntax.Decl // Annotated declarations, in source order
	// Suspects are directives resembling a marker without matching one.
	Suspects []Suspect
	// LocalTypes are the type names declared at package level, in this file
	// for ParseFile and in the whole package for LoadPackages.
	LocalTypes map[string]bool
}

// Suspect is a directive that was probably meant as a marker, such as
// "//easyinit:generate member" or "//easyinit:genrate".
type Suspect struct {
	Text   string // Directive as written, without "//"
	Marker string // Marker that was probably meant
	Pos    token.Position
}

// HasDecls returns true if the file holds at least one annotated declaration.
func (f *SourceFile) HasDecls() bool {
	return len(f.Decls) > 0
}

// HasSuspects returns true if the file holds a directive resembling a marker.
func (f *SourceFile) HasSuspects() bool {
	return len(f.Suspects) > 0
}

// Imports returns the import specs of the file as they appear in the source,
// e.g. `"time"` or `pb "example.com/api/v1"`. Blank imports and cgo are left
// out: generated code never refers to them.
func (f *SourceFile) Imports() []string {
	out := make([]string, 0, len(f.File.Imports))

	for _, imp := range f.File.Imports {
		if imp.Name != nil && imp.Name.Name == "_" {
			continue
		}
		if imp.Path.Value == `"C"` {
			continue
		}

		spec := imp.Path.Value
		if imp.Name != nil {
			spec = imp.Name.Name + " " + spec
		}

		out = append(out, spec)
	}

	return out
}
