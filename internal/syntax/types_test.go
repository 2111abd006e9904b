package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	inner := Function("func(int) error")
	opt := Optional(inner)

	assert.Equal(t, TypeKindOptional, opt.Kind)
	assert.Equal(t, "*func(int) error", opt.Text)
	assert.Same(t, inner, opt.Wrapped)
}

func TestDecl_Fields(t *testing.T) {
	decl := &Decl{
		Name: "Main",
		Kind: DeclKindStruct,
		Members: []Member{
			{Kind: MemberKindField, Name: "A"},
			{Kind: MemberKindMethod, Name: "String"},
			{Kind: MemberKindEmbedded},
		},
	}

	fields := decl.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "A", fields[0].Name)
	assert.Equal(t, MemberKindEmbedded, fields[1].Kind)
	assert.False(t, decl.IsGeneric())
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "struct", DeclKindStruct.String())
	assert.Equal(t, "interface", DeclKindInterface.String())
	assert.Equal(t, "unknown", DeclKind(99).String())
	assert.Equal(t, "unknown", TypeKind(99).String())
}
