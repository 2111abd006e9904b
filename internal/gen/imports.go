package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"easyinit/internal/analyze"
	"easyinit/internal/syntax"
)

// fileImports returns the import specs the generated file starts from.
// goimports never removes a dot import, so dot imports are dropped unless a
// rendered type names something neither predeclared nor declared by the
// package.
func fileImports(sf *analyze.SourceFile) []string {
	specs := sf.Imports()

	hasDot := false
	for _, spec := range specs {
		if isDotImport(spec) {
			hasDot = true
			break
		}
	}

	if !hasDot || needsDotImport(sf) {
		return specs
	}

	out := make([]string, 0, len(specs))
	for _, spec := range specs {
		if !isDotImport(spec) {
			out = append(out, spec)
		}
	}

	return out
}

func isDotImport(spec string) bool {
	return strings.HasPrefix(spec, ". ")
}

// needsDotImport reports whether a type used by the annotated declarations
// of sf may come from a dot import. Unparsable type text counts as a use.
func needsDotImport(sf *analyze.SourceFile) bool {
	for _, decl := range sf.Decls {
		local := make(map[string]bool, len(decl.TypeArgs))
		for _, a := range decl.TypeArgs {
			local[a] = true
		}

		exprs, ok := declTypeExprs(decl)
		if !ok {
			return true
		}

		for _, expr := range exprs {
			for _, name := range unqualifiedIdents(expr) {
				if local[name] || sf.LocalTypes[name] || types.Universe.Lookup(name) != nil {
					continue
				}

				return true
			}
		}
	}

	return false
}

// declTypeExprs parses the field types and type parameter constraints of
// decl, the only types rendered into the generated file besides the
// declaration itself.
func declTypeExprs(decl *syntax.Decl) ([]ast.Expr, bool) {
	var out []ast.Expr

	for _, m := range decl.Fields() {
		for _, b := range m.Bindings {
			if b.Type == nil {
				continue
			}

			expr, err := parser.ParseExpr(b.Type.Text)
			if err != nil {
				return nil, false
			}

			out = append(out, expr)
		}
	}

	if decl.TypeParams != "" {
		file, err := parser.ParseFile(token.NewFileSet(), "",
			"package p\ntype _["+decl.TypeParams+"] struct{}\n", parser.SkipObjectResolution)
		if err != nil {
			return nil, false
		}

		for _, d := range file.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.TypeParams == nil {
					continue
				}

				for _, f := range ts.TypeParams.List {
					out = append(out, f.Type)
				}
			}
		}
	}

	return out, true
}

// unqualifiedIdents returns the identifiers of expr that refer to types
// without a package qualifier. Parameter names of function types and
// qualified identifiers are left out.
func unqualifiedIdents(expr ast.Expr) []string {
	var out []string

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			return false
		case *ast.Field:
			if n.Type != nil {
				out = append(out, unqualifiedIdents(n.Type)...)
			}

			return false
		case *ast.Ident:
			out = append(out, n.Name)
		}

		return true
	})

	return out
}
