package extract

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easyinit/internal/syntax"
)

func fieldMember(name string, typ *syntax.TypeSyntax) syntax.Member {
	return syntax.Member{
		Kind:     syntax.MemberKindField,
		Bindings: []syntax.Binding{{Pattern: syntax.Ident(name), Type: typ}},
	}
}

func structDecl(members ...syntax.Member) *syntax.Decl {
	return &syntax.Decl{Name: "Main", Kind: syntax.DeclKindStruct, Members: members}
}

func TestExtract_PreservesOrderAndShapes(t *testing.T) {
	decl := structDecl(
		fieldMember("Value", syntax.Named("int")),
		fieldMember("Name", syntax.Optional(syntax.Named("string"))),
		fieldMember("Test", syntax.Function("func()")),
		fieldMember("Hook", syntax.Optional(syntax.Function("func(int) error"))),
		fieldMember("Index", syntax.Named("map[string][]pkg.Item[int]")),
	)

	fields, err := Extract(decl)
	require.NoError(t, err)

	want := []Field{
		{Name: "Value", DeclaredType: "int"},
		{Name: "Name", DeclaredType: "string", IsOptional: true},
		{Name: "Test", DeclaredType: "func()", IsFunctionValued: true},
		{Name: "Hook", DeclaredType: "func(int) error", IsOptional: true, IsFunctionValued: true},
		{Name: "Index", DeclaredType: "map[string][]pkg.Item[int]"},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_MultipleBindingsInOneMember(t *testing.T) {
	decl := structDecl(syntax.Member{
		Kind: syntax.MemberKindField,
		Bindings: []syntax.Binding{
			{Pattern: syntax.Ident("X"), Type: syntax.Named("float64")},
			{Pattern: syntax.Ident("Y"), Type: syntax.Named("float64")},
		},
	})

	fields, err := Extract(decl)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "X", fields[0].Name)
	assert.Equal(t, "Y", fields[1].Name)
}

func TestExtract_SkipsMethods(t *testing.T) {
	decl := structDecl(
		syntax.Member{Kind: syntax.MemberKindMethod, Name: "String"},
		fieldMember("Value", syntax.Named("int")),
		syntax.Member{Kind: syntax.MemberKindMethod, Name: "Validate"},
	)

	fields, err := Extract(decl)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Value", fields[0].Name)
}

func TestExtract_EmptyStruct(t *testing.T) {
	fields, err := Extract(structDecl())
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestExtract_Deterministic(t *testing.T) {
	decl := structDecl(
		fieldMember("A", syntax.Named("int")),
		fieldMember("B", syntax.Optional(syntax.Named("string"))),
	)

	first, err := Extract(decl)
	require.NoError(t, err)

	second, err := Extract(decl)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name  string
		decl  *syntax.Decl
		want  error
		field string
	}{
		{
			name: "interface",
			decl: &syntax.Decl{Name: "Main", Kind: syntax.DeclKindInterface},
			want: ErrNotARecord,
		},
		{
			name: "defined type",
			decl: &syntax.Decl{Name: "Main", Kind: syntax.DeclKindDefined},
			want: ErrNotARecord,
		},
		{
			name: "function",
			decl: &syntax.Decl{Name: "Main", Kind: syntax.DeclKindOther},
			want: ErrNotARecord,
		},
		{
			name: "wildcard",
			decl: structDecl(syntax.Member{
				Kind: syntax.MemberKindField,
				Bindings: []syntax.Binding{{
					Pattern: syntax.Pattern{Kind: syntax.PatternKindWildcard, Name: "_"},
					Type:    syntax.Named("int"),
				}},
			}),
			want:  ErrNotAnIdentifier,
			field: "_",
		},
		{
			name: "embedded",
			decl: structDecl(syntax.Member{
				Kind: syntax.MemberKindEmbedded,
				Bindings: []syntax.Binding{{
					Pattern: syntax.Pattern{Kind: syntax.PatternKindNone},
					Type:    syntax.Named("Base"),
				}},
			}),
			want: ErrNotAnIdentifier,
		},
		{
			name:  "missing type",
			decl:  structDecl(fieldMember("Value", nil)),
			want:  ErrMissingType,
			field: "Value",
		},
		{
			name:  "anonymous struct",
			decl:  structDecl(fieldMember("Pair", syntax.Unsupported("struct{ A, B int }"))),
			want:  ErrUnsupportedType,
			field: "Pair",
		},
		{
			name:  "double pointer",
			decl:  structDecl(fieldMember("PP", syntax.Optional(syntax.Optional(syntax.Named("int"))))),
			want:  ErrUnsupportedType,
			field: "PP",
		},
		{
			name:  "pointer to unsupported",
			decl:  structDecl(fieldMember("P", syntax.Optional(syntax.Unsupported("struct{}")))),
			want:  ErrUnsupportedType,
			field: "P",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Extract(tt.decl)
			require.Error(t, err)
			assert.Nil(t, fields)
			assert.ErrorIs(t, err, tt.want)

			var expErr *ExpansionError
			require.True(t, errors.As(err, &expErr))
			assert.Equal(t, "Main", expErr.Decl)
			assert.Equal(t, tt.field, expErr.Field)
		})
	}
}

func TestExtract_FailureAfterValidFieldsEmitsNothing(t *testing.T) {
	decl := structDecl(
		fieldMember("A", syntax.Named("int")),
		fieldMember("B", nil),
	)

	fields, err := Extract(decl)
	require.ErrorIs(t, err, ErrMissingType)
	assert.Nil(t, fields)
}

func TestExpansionError_Error(t *testing.T) {
	err := &ExpansionError{Kind: ErrUnsupportedType, Decl: "Main", Field: "Pair", Detail: "struct{}"}
	assert.Equal(t, "Main.Pair: field type is not supported (struct{})", err.Error())

	err = &ExpansionError{Kind: ErrNotARecord, Decl: "Main", Detail: "interface"}
	assert.Equal(t, "Main: declaration is not a struct (interface)", err.Error())
}

func TestField_TypeText(t *testing.T) {
	assert.Equal(t, "*string", Field{DeclaredType: "string", IsOptional: true}.TypeText())
	assert.Equal(t, "func()", Field{DeclaredType: "func()", IsFunctionValued: true}.TypeText())
}
