package syntax

import (
	"go/token"

	"easyinit/internal/common"
)

// DeclKind represents the kind of an annotated declaration.
type DeclKind int

const (
	DeclKindOther     DeclKind = iota // func, var, const or anything that is not a type
	DeclKindStruct                    // type T struct{...}
	DeclKindInterface                 // type T interface{...}
	DeclKindAlias                     // type T = U
	DeclKindDefined                   // type T U, where U is not a struct literal
)

// String returns a human-readable representation of the DeclKind.
func (k DeclKind) String() string {
	switch k {
	case DeclKindOther:
		return "non-type declaration"
	case DeclKindStruct:
		return "struct"
	case DeclKindInterface:
		return "interface"
	case DeclKindAlias:
		return "alias"
	case DeclKindDefined:
		return "defined type"
	default:
		return common.UnknownStr
	}
}

// MemberKind represents the kind of a member of a declaration.
type MemberKind int

const (
	MemberKindField    MemberKind = iota // named struct field line
	MemberKindEmbedded                   // embedded (anonymous) field
	MemberKindMethod                     // method declared on the type
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberKindField:
		return "field"
	case MemberKindEmbedded:
		return "embedded field"
	case MemberKindMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// PatternKind represents the shape of a binding pattern.
type PatternKind int

const (
	PatternKindIdentifier PatternKind = iota // plain name
	PatternKindWildcard                      // _
	PatternKindNone                          // no name at all (embedded field)
)

// String returns a human-readable representation of the PatternKind.
func (k PatternKind) String() string {
	switch k {
	case PatternKindIdentifier:
		return "identifier"
	case PatternKindWildcard:
		return "wildcard"
	case PatternKindNone:
		return "none"
	default:
		return common.UnknownStr
	}
}

// TypeKind is the closed set of type shapes the extractor distinguishes.
type TypeKind int

const (
	TypeKindUnsupported TypeKind = iota // struct{...}, interface{...}, **T, ...T
	TypeKindNamed                       // T, pkg.T, T[K], []T, [N]T, map[K]V, chan T
	TypeKindOptional                    // *X, with X held in Wrapped
	TypeKindFunction                    // func(...) ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindUnsupported:
		return "unsupported"
	case TypeKindNamed:
		return "named"
	case TypeKindOptional:
		return "optional"
	case TypeKindFunction:
		return "function"
	default:
		return common.UnknownStr
	}
}

// TypeSyntax is the type annotation of a binding as written in the source.
type TypeSyntax struct {
	Kind    TypeKind    // Shape of the type
	Text    string      // Source text of the whole type expression
	Wrapped *TypeSyntax // For TypeKindOptional, the pointed-to type
}

// Pattern is the name side of a binding.
type Pattern struct {
	Kind PatternKind
	Name string // Set for PatternKindIdentifier and PatternKindWildcard
}

// Binding is a single name/type pair inside a member.
// A nil Type means the binding has no type annotation.
type Binding struct {
	Pattern Pattern
	Type    *TypeSyntax
}

// Member is one entry of a declaration's member list.
type Member struct {
	Kind     MemberKind
	Name     string    // Method name for MemberKindMethod
	Bindings []Binding // Field bindings; a line like "a, b int" holds two
	Pos      token.Position
}

// Decl is the structured form of an annotated declaration.
type Decl struct {
	Name string
	Kind DeclKind
	// Marker is the directive that activated the declaration.
	Marker string
	// TypeParams holds the type parameter list as written, without brackets
	// (e.g. "K comparable, V any").
	TypeParams string
	// TypeArgs holds the type parameter names used to instantiate the type
	// (e.g. ["K", "V"]).
	TypeArgs []string
	Members  []Member
	Pos      token.Position
}

// IsGeneric returns true if the declaration has type parameters.
func (d *Decl) IsGeneric() bool {
	return len(d.TypeArgs) > 0
}

// Fields returns the members of kind MemberKindField and MemberKindEmbedded,
// in declaration order.
func (d *Decl) Fields() []Member {
	var out []Member

	for _, m := range d.Members {
		if m.Kind == MemberKindField || m.Kind == MemberKindEmbedded {
			out = append(out, m)
		}
	}

	return out
}

// Named returns a TypeSyntax of kind TypeKindNamed.
func Named(text string) *TypeSyntax {
	return &TypeSyntax{Kind: TypeKindNamed, Text: text}
}

// Function returns a TypeSyntax of kind TypeKindFunction.
func Function(text string) *TypeSyntax {
	return &TypeSyntax{Kind: TypeKindFunction, Text: text}
}

// Optional returns a pointer-wrapped TypeSyntax over inner.
func Optional(inner *TypeSyntax) *TypeSyntax {
	return &TypeSyntax{Kind: TypeKindOptional, Text: "*" + inner.Text, Wrapped: inner}
}

// Unsupported returns a TypeSyntax of kind TypeKindUnsupported.
func Unsupported(text string) *TypeSyntax {
	return &TypeSyntax{Kind: TypeKindUnsupported, Text: text}
}

// Ident returns an identifier pattern.
func Ident(name string) Pattern {
	return Pattern{Kind: PatternKindIdentifier, Name: name}
}
