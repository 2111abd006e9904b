package analyze

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"

	"easyinit/internal/syntax"
)

// typeSyntax converts a field type expression into its syntax form.
// It returns nil when there is no usable type expression.
func typeSyntax(fset *token.FileSet, expr ast.Expr) *syntax.TypeSyntax {
	switch t := expr.(type) {
	case nil, *ast.BadExpr:
		return nil

	case *ast.ParenExpr:
		// (func()) and friends: the parentheses are grouping only.
		return typeSyntax(fset, t.X)

	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr,
		*ast.ArrayType, *ast.MapType, *ast.ChanType:
		return syntax.Named(exprText(fset, expr))

	case *ast.FuncType:
		return syntax.Function(exprText(fset, expr))

	case *ast.StarExpr:
		inner := typeSyntax(fset, t.X)
		if inner == nil {
			return syntax.Unsupported(exprText(fset, expr))
		}

		return &syntax.TypeSyntax{
			Kind:    syntax.TypeKindOptional,
			Text:    exprText(fset, expr),
			Wrapped: inner,
		}

	default:
		// struct{...}, interface{...}, ...T
		return syntax.Unsupported(exprText(fset, expr))
	}
}

// exprText prints an expression the way gofmt would.
func exprText(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return types.ExprString(expr)
	}

	return buf.String()
}
