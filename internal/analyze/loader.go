package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"maps"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"easyinit/internal/match"
	"easyinit/internal/syntax"
)

// LoadMode specifies what information to load from packages.
// Only syntax is needed: field types are taken as written.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Loader finds declarations carrying one of a set of marker directives.
type Loader struct {
	markers map[string]bool
	known   []string // markers, sorted
}

// NewLoader creates a Loader recognizing the given markers. A marker is the
// directive text without the leading "//", e.g. "easyinit:generate".
func NewLoader(markers ...string) *Loader {
	l := &Loader{markers: make(map[string]bool, len(markers))}
	for _, m := range markers {
		l.markers[m] = true
	}

	l.known = slices.Sorted(maps.Keys(l.markers))

	return l
}

// ParseFile parses a single Go file and returns its annotated declarations.
// The src argument follows go/parser.ParseFile: nil reads filename from disk.
// Methods are collected from the same file only.
func (l *Loader) ParseFile(fset *token.FileSet, filename string, src any) (*SourceFile, error) {
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	sf := l.sourceFile(fset, file)
	sf.LocalTypes = declaredTypes(file)
	attachMethods(fset, sf.Decls, file)

	return sf, nil
}

// LoadPackages loads the specified packages and returns every file that
// holds at least one annotated declaration.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/store").
func (l *Loader) LoadPackages(dir string, patterns ...string) ([]*SourceFile, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var out []*SourceFile

	for _, pkg := range pkgs {
		var files []*SourceFile

		for _, file := range pkg.Syntax {
			// Skip our own output and any other generated code.
			if ast.IsGenerated(file) {
				continue
			}

			sf := l.sourceFile(pkg.Fset, file)
			if sf.HasDecls() || sf.HasSuspects() {
				files = append(files, sf)
			}
		}

		// Methods and types may live in any file of the package.
		local := declaredTypes(pkg.Syntax...)
		for _, sf := range files {
			sf.LocalTypes = local
			attachMethods(pkg.Fset, sf.Decls, pkg.Syntax...)
		}

		out = append(out, files...)
	}

	return out, nil
}

// sourceFile collects the annotated declarations of a parsed file.
func (l *Loader) sourceFile(fset *token.FileSet, file *ast.File) *SourceFile {
	sf := &SourceFile{
		Path:    fset.Position(file.Package).Filename,
		Package: file.Name.Name,
		Fset:    fset,
		File:    file,
	}

	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.GenDecl:
			sf.Decls = append(sf.Decls, l.genDecl(fset, decl)...)

		case *ast.FuncDecl:
			if marker, ok := l.marker(decl.Doc); ok {
				sf.Decls = append(sf.Decls, &syntax.Decl{
					Name:   decl.Name.Name,
					Kind:   syntax.DeclKindOther,
					Marker: marker,
					Pos:    fset.Position(decl.Pos()),
				})
			}
		}
	}

	sf.Suspects = l.suspects(fset, file)

	return sf
}

// declaredTypes returns the names of the package-level types of files.
func declaredTypes(files ...*ast.File) map[string]bool {
	out := make(map[string]bool)

	for _, file := range files {
		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					out[ts.Name.Name] = true
				}
			}
		}
	}

	return out
}

// suspects lists the line comments of file that look like a misspelled
// marker.
func (l *Loader) suspects(fset *token.FileSet, file *ast.File) []Suspect {
	var out []Suspect

	for _, group := range file.Comments {
		for _, c := range group.List {
			body, ok := strings.CutPrefix(c.Text, "//")
			if !ok {
				continue
			}

			if marker, ok := match.SuspectMarker(body, l.known); ok {
				out = append(out, Suspect{
					Text:   strings.TrimRight(body, " \t"),
					Marker: marker,
					Pos:    fset.Position(c.Pos()),
				})
			}
		}
	}

	return out
}

func (l *Loader) genDecl(fset *token.FileSet, decl *ast.GenDecl) []*syntax.Decl {
	var out []*syntax.Decl

	// A lone spec without parentheses carries its doc comment on the GenDecl.
	groupDoc := decl.Doc
	if decl.Lparen.IsValid() {
		groupDoc = nil
	}

	for _, spec := range decl.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			marker, ok := l.marker(s.Doc)
			if !ok {
				marker, ok = l.marker(groupDoc)
			}
			if ok {
				out = append(out, typeDecl(fset, s, marker))
			}

		case *ast.ValueSpec:
			marker, ok := l.marker(s.Doc)
			if !ok {
				marker, ok = l.marker(groupDoc)
			}
			if ok {
				out = append(out, &syntax.Decl{
					Name:   valueName(s),
					Kind:   syntax.DeclKindOther,
					Marker: marker,
					Pos:    fset.Position(s.Pos()),
				})
			}
		}
	}

	return out
}

// marker returns the first recognized directive in the comment group.
// The directive must be a line comment of exactly "//<marker>".
func (l *Loader) marker(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}

		text = strings.TrimRight(text, " \t")
		if l.markers[text] {
			return text, true
		}
	}

	return "", false
}

// typeDecl builds the syntax form of a type spec.
func typeDecl(fset *token.FileSet, spec *ast.TypeSpec, marker string) *syntax.Decl {
	decl := &syntax.Decl{
		Name:   spec.Name.Name,
		Marker: marker,
		Pos:    fset.Position(spec.Pos()),
	}

	if spec.TypeParams != nil {
		decl.TypeParams, decl.TypeArgs = typeParams(fset, spec.TypeParams)
	}

	if spec.Assign.IsValid() {
		decl.Kind = syntax.DeclKindAlias
		return decl
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = syntax.DeclKindStruct
		decl.Members = structMembers(fset, t)
	case *ast.InterfaceType:
		decl.Kind = syntax.DeclKindInterface
	default:
		decl.Kind = syntax.DeclKindDefined
	}

	return decl
}

// structMembers converts the field list of a struct into members.
func structMembers(fset *token.FileSet, st *ast.StructType) []syntax.Member {
	members := make([]syntax.Member, 0, len(st.Fields.List))

	for _, f := range st.Fields.List {
		m := syntax.Member{
			Kind: syntax.MemberKindField,
			Pos:  fset.Position(f.Pos()),
		}
		typ := typeSyntax(fset, f.Type)

		if len(f.Names) == 0 {
			m.Kind = syntax.MemberKindEmbedded
			m.Bindings = []syntax.Binding{{
				Pattern: syntax.Pattern{Kind: syntax.PatternKindNone},
				Type:    typ,
			}}
			members = append(members, m)

			continue
		}

		for _, name := range f.Names {
			pattern := syntax.Ident(name.Name)
			if name.Name == "_" {
				pattern.Kind = syntax.PatternKindWildcard
			}

			m.Bindings = append(m.Bindings, syntax.Binding{Pattern: pattern, Type: typ})
		}

		members = append(members, m)
	}

	return members
}

// typeParams renders a type parameter list and the names that instantiate it.
func typeParams(fset *token.FileSet, list *ast.FieldList) (string, []string) {
	var (
		parts []string
		names []string
	)

	for _, f := range list.List {
		var fieldNames []string
		for _, n := range f.Names {
			fieldNames = append(fieldNames, n.Name)
		}

		names = append(names, fieldNames...)
		parts = append(parts, strings.Join(fieldNames, ", ")+" "+exprText(fset, f.Type))
	}

	return strings.Join(parts, ", "), names
}

// attachMethods appends the methods declared on each decl found in files.
func attachMethods(fset *token.FileSet, decls []*syntax.Decl, files ...*ast.File) {
	if len(decls) == 0 {
		return
	}

	byName := make(map[string]*syntax.Decl, len(decls))
	for _, d := range decls {
		if d.Kind != syntax.DeclKindOther {
			byName[d.Name] = d
		}
	}

	for _, file := range files {
		for _, d := range file.Decls {
			fn, ok := d.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			target, ok := byName[receiverName(fn.Recv.List[0].Type)]
			if !ok {
				continue
			}

			target.Members = append(target.Members, syntax.Member{
				Kind: syntax.MemberKindMethod,
				Name: fn.Name.Name,
				Pos:  fset.Position(fn.Pos()),
			})
		}
	}
}

// receiverName returns the base type name of a method receiver.
func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.ParenExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}

func valueName(spec *ast.ValueSpec) string {
	if len(spec.Names) == 0 {
		return ""
	}

	return spec.Names[0].Name
}
