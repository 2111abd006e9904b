package extract

import (
	"fmt"

	"easyinit/internal/common"
	"easyinit/internal/syntax"
)

// Field is one stored field of the annotated struct.
type Field struct {
	Name string
	// DeclaredType is the type as written; for optional fields it is the
	// pointed-to type.
	DeclaredType     string
	IsOptional       bool
	IsFunctionValued bool
}

// TypeText returns the field type as declared in the struct.
func (f Field) TypeText() string {
	if f.IsOptional {
		return "*" + f.DeclaredType
	}

	return f.DeclaredType
}

// Extract walks the members of decl and returns its fields in declaration
// order. Methods are skipped. Any violation aborts the whole extraction.
func Extract(decl *syntax.Decl) ([]Field, error) {
	if decl.Kind != syntax.DeclKindStruct {
		return nil, &ExpansionError{
			Kind:   ErrNotARecord,
			Decl:   decl.Name,
			Detail: decl.Kind.String(),
			Pos:    decl.Pos,
		}
	}

	var fields []Field

	for _, m := range decl.Fields() {
		if m.Kind == syntax.MemberKindEmbedded {
			return nil, &ExpansionError{
				Kind:   ErrNotAnIdentifier,
				Decl:   decl.Name,
				Detail: "embedded field " + embeddedText(m),
				Pos:    m.Pos,
			}
		}

		for _, b := range m.Bindings {
			f, err := extractBinding(decl, m, b)
			if err != nil {
				return nil, err
			}

			fields = append(fields, f)
		}
	}

	return fields, nil
}

func extractBinding(decl *syntax.Decl, m syntax.Member, b syntax.Binding) (Field, error) {
	if b.Pattern.Kind != syntax.PatternKindIdentifier {
		return Field{}, &ExpansionError{
			Kind:   ErrNotAnIdentifier,
			Decl:   decl.Name,
			Field:  b.Pattern.Name,
			Detail: b.Pattern.Kind.String() + " pattern",
			Pos:    m.Pos,
		}
	}

	name := b.Pattern.Name

	if b.Type == nil {
		return Field{}, &ExpansionError{
			Kind:  ErrMissingType,
			Decl:  decl.Name,
			Field: name,
			Pos:   m.Pos,
		}
	}

	f, ok := classify(b.Type)
	if !ok {
		return Field{}, &ExpansionError{
			Kind:   ErrUnsupportedType,
			Decl:   decl.Name,
			Field:  name,
			Detail: b.Type.Text,
			Pos:    m.Pos,
		}
	}

	f.Name = name

	return f, nil
}

// classify maps a type annotation onto a Field. It reports false for shapes
// that cannot be rendered.
func classify(t *syntax.TypeSyntax) (Field, bool) {
	switch t.Kind {
	case syntax.TypeKindNamed:
		return Field{DeclaredType: t.Text}, true

	case syntax.TypeKindFunction:
		return Field{DeclaredType: t.Text, IsFunctionValued: true}, true

	case syntax.TypeKindOptional:
		if t.Wrapped == nil {
			return Field{}, false
		}

		switch t.Wrapped.Kind {
		case syntax.TypeKindNamed:
			return Field{DeclaredType: t.Wrapped.Text, IsOptional: true}, true
		case syntax.TypeKindFunction:
			return Field{DeclaredType: t.Wrapped.Text, IsOptional: true, IsFunctionValued: true}, true
		case syntax.TypeKindOptional, syntax.TypeKindUnsupported:
			return Field{}, false
		}

		return Field{}, false

	case syntax.TypeKindUnsupported:
		return Field{}, false
	}

	panic(fmt.Sprintf("unexpected type kind %d", t.Kind))
}

func embeddedText(m syntax.Member) string {
	b, ok := common.First(m.Bindings)
	if !ok || b.Type == nil {
		return "<unknown>"
	}

	return b.Type.Text
}
