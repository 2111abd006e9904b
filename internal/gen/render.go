package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"easyinit/internal/common"
	"easyinit/internal/extract"
	"easyinit/internal/syntax"
)

// sourceParam is the name of the copy source parameter of the override
// initializer.
const sourceParam = "src"

// Subject describes the type initializers are rendered for.
type Subject struct {
	Name string
	// TypeParams is the type parameter list without brackets, e.g.
	// "K comparable, V any".
	TypeParams string
	// TypeArgs are the names instantiating the type, e.g. ["K", "V"].
	TypeArgs []string
	// Reserved are identifiers parameters must not shadow, such as the package
	// names imported by the source file.
	Reserved []string
}

// SubjectOf builds the Subject of a declaration.
func SubjectOf(decl *syntax.Decl, reserved ...string) Subject {
	s := Subject{Name: decl.Name, Reserved: reserved}
	if decl.IsGeneric() {
		s.TypeParams = decl.TypeParams
		s.TypeArgs = decl.TypeArgs
	}

	return s
}

// Type returns the instantiated subject type, e.g. "Main" or "Pair[K, V]".
func (s Subject) Type() string {
	if len(s.TypeArgs) == 0 {
		return s.Name
	}

	return s.Name + "[" + strings.Join(s.TypeArgs, ", ") + "]"
}

// FullName returns the name of the full-field initializer.
func (s Subject) FullName() string {
	if common.IsExported(s.Name) {
		return "New" + s.Name
	}

	return "new" + common.UpperFirst(s.Name)
}

// OverrideName returns the name of the copy-with-overrides initializer.
func (s Subject) OverrideName() string {
	return s.FullName() + "From"
}

func (s Subject) typeParamList() string {
	if s.TypeParams == "" {
		return ""
	}

	return "[" + s.TypeParams + "]"
}

// param is one rendered parameter together with the field it sets.
type param struct {
	Field string // Struct field name
	Name  string // Parameter name
	Type  string // Parameter type
	Value string // Expression assigned to the field
}

// initData holds everything an initializer template needs.
type initData struct {
	FuncName   string
	TypeParams string
	Type       string
	Source     string
	Params     []param
}

var fullTemplate = template.Must(template.New("full").Parse(
	`// {{.FuncName}} returns a {{.Type}} with every field set from the arguments.
func {{.FuncName}}{{.TypeParams}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) {{.Type}} {
	return {{.Type}}{
{{- range .Params}}
		{{.Field}}: {{.Name}},
{{- end}}
	}
}
`))

var overrideTemplate = template.Must(template.New("override").Parse(
	`// {{.FuncName}} returns a copy of {{.Source}} with every non-nil argument applied over it.
func {{.FuncName}}{{.TypeParams}}({{.Source}} {{.Type}}{{range .Params}}, {{.Name}} {{.Type}}{{end}}) {{.Type}} {
{{- range .Params}}
	if {{.Name}} != nil {
		{{$.Source}}.{{.Field}} = {{.Value}}
	}
{{- end}}
	return {{.Source}}
}
`))

// RenderFull renders the full-field initializer: one parameter per field,
// typed exactly as the field, assigned in field order.
func RenderFull(s Subject, fields []extract.Field) (string, error) {
	names := paramNames(s, fields, false)

	data := initData{
		FuncName:   s.FullName(),
		TypeParams: s.typeParamList(),
		Type:       s.Type(),
	}

	for i, f := range fields {
		data.Params = append(data.Params, param{
			Field: f.Name,
			Name:  names[i],
			Type:  f.TypeText(),
			Value: names[i],
		})
	}

	return execute(fullTemplate, &data)
}

// RenderOverride renders the copy-with-overrides initializer: the copy source
// first, then one nil-able parameter per field. A nil argument keeps the
// value of the copy source.
func RenderOverride(s Subject, fields []extract.Field) (string, error) {
	names := paramNames(s, fields, true)

	data := initData{
		FuncName:   s.OverrideName(),
		TypeParams: s.typeParamList(),
		Type:       s.Type(),
		Source:     sourceParam,
	}

	for i, f := range fields {
		typ, value := overrideParam(f, names[i])
		data.Params = append(data.Params, param{
			Field: f.Name,
			Name:  names[i],
			Type:  typ,
			Value: value,
		})
	}

	return execute(overrideTemplate, &data)
}

// overrideParam returns the parameter type and the assigned expression for
// a field of the override initializer.
//
// Pointer fields and function fields can already be nil, so they are passed
// through as declared. Everything else is taken by pointer.
func overrideParam(f extract.Field, name string) (string, string) {
	switch {
	case f.IsOptional:
		return "*" + f.DeclaredType, name
	case f.IsFunctionValued:
		return f.DeclaredType, name
	default:
		return "*" + f.DeclaredType, "*" + name
	}
}

// paramNames derives unique parameter names from the field names.
func paramNames(s Subject, fields []extract.Field, withSource bool) []string {
	taken := make(map[string]bool, len(fields)+len(s.TypeArgs)+len(s.Reserved)+2)
	// A parameter named like the subject type would hide it in the body.
	taken[s.Name] = true
	for _, r := range s.Reserved {
		taken[r] = true
	}
	for _, a := range s.TypeArgs {
		taken[a] = true
	}
	if withSource {
		taken[sourceParam] = true
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		name := common.SafeIdent(common.LowerCamel(f.Name), taken)
		taken[name] = true
		names[i] = name
	}

	return names
}

// Synthesize renders the initializers of the given style, in the order
// full-field, copy-with-overrides.
func Synthesize(style Style, s Subject, fields []extract.Field) ([]string, error) {
	var decls []string

	if style == MemberStyle {
		full, err := RenderFull(s, fields)
		if err != nil {
			return nil, err
		}

		decls = append(decls, full)
	}

	override, err := RenderOverride(s, fields)
	if err != nil {
		return nil, err
	}

	return append(decls, override), nil
}

func execute(tmpl *template.Template, data *initData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}
