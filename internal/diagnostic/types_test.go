package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndError(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	pos := token.Position{Filename: "types.go", Line: 12, Column: 2}
	d.AddError("EI003", "Main.Value: field has no type annotation", "Main", pos)
	d.AddError("EI001", "Other: declaration is not a struct", "Other", token.Position{})
	d.AddWarning("EI100", "nothing to generate", "Empty", token.Position{})

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.Len(t, d.Warnings, 1)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"types.go:12:2: [EI003] Main.Value: field has no type annotation; "+
			"Other: [EI001] Other: declaration is not a struct",
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("W", "one", "", token.Position{})
	b.AddError("E", "two", "", token.Position{})
	b.AddWarning("W", "three", "", token.Position{})

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 2)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "unknown", DiagnosticSeverity(0).String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}

func TestDiagnostic_StringWithoutContext(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}
