package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"easyinit/internal/analyze"
	"easyinit/internal/common"
	"easyinit/internal/diagnostic"
	"easyinit/internal/extract"
	"easyinit/internal/logger"
	"easyinit/internal/plugin"
)

// Diagnostic codes reported by Generate.
const (
	CodeNotARecord      = "EI001"
	CodeNotAnIdentifier = "EI002"
	CodeMissingType     = "EI003"
	CodeUnsupportedType = "EI004"
	CodeExpansion       = "EI005"
	CodeUnknownMarker   = "EI006"
	CodeFormat          = "EI007"
	CodeSuspectMarker   = "EI008"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix replaces ".go" in the source file name to form the output name.
	Suffix string
	// WriteDebugUnformatted writes the raw output next to the target file when
	// it fails to format.
	WriteDebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:                "_easyinit.go",
		WriteDebugUnformatted: true,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is where the file belongs, next to Source.
	Path string
	// Source is the file the declarations were read from.
	Source string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator expands annotated declarations through a plugin registry and
// assembles one output file per source file.
type Generator struct {
	config   GeneratorConfig
	registry *plugin.Registry
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, registry *plugin.Registry) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultGeneratorConfig().Suffix
	}

	return &Generator{config: config, registry: registry}
}

// OutputPath returns the generated file path for a source file.
func (g *Generator) OutputPath(source string) string {
	return strings.TrimSuffix(source, ".go") + g.config.Suffix
}

// Generate expands every annotated declaration of files. A file with any
// failing declaration produces no output; its failures are reported in the
// returned diagnostics.
func (g *Generator) Generate(ctx context.Context, files []*analyze.SourceFile) ([]GeneratedFile, diagnostic.Diagnostics) {
	log := logger.FromContext(ctx)

	var (
		out   []GeneratedFile
		diags diagnostic.Diagnostics
	)

	for _, sf := range files {
		flog := log.With("file", sf.Path)

		file, fileDiags := g.generateFile(sf)
		diags.Merge(fileDiags)

		if fileDiags.HasErrors() {
			flog.Warn("skipping file", "errors", len(fileDiags.Errors))
			continue
		}

		if file == nil {
			continue
		}

		flog.Debug("generated", "output", file.Path, "decls", len(sf.Decls))
		out = append(out, *file)
	}

	return out, diags
}

func (g *Generator) generateFile(sf *analyze.SourceFile) (*GeneratedFile, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	for _, s := range sf.Suspects {
		diags.AddWarning(CodeSuspectMarker,
			fmt.Sprintf("directive %q is not recognized; did you mean %q?", "//"+s.Text, "//"+s.Marker),
			"", s.Pos)
	}

	if !sf.HasDecls() {
		return nil, diags
	}

	ctx := plugin.Context{Reserved: importNames(sf)}

	var decls []string

	for _, decl := range sf.Decls {
		desc, err := g.registry.Lookup(decl.Marker)
		if err != nil {
			diags.AddError(CodeUnknownMarker, err.Error(), decl.Name, decl.Pos)
			continue
		}

		rendered, err := desc.Expand(decl, ctx)
		if err != nil {
			diags.AddError(errorCode(err), err.Error(), decl.Name, errorPos(err, decl.Pos))
			continue
		}

		decls = append(decls, rendered...)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	target := g.OutputPath(sf.Path)

	content, err := g.assemble(target, sf, decls)
	if err != nil {
		diags.AddError(CodeFormat, err.Error(), "", sf.Fset.Position(sf.File.Package))
		return nil, diags
	}

	return &GeneratedFile{Path: target, Source: sf.Path, Content: content}, diags
}

// fileData holds the data of the file template.
type fileData struct {
	Package string
	Imports []string
	Decls   []string
}

var fileTemplate = template.Must(template.New("file").Parse(
	`// Code generated by easyinit. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}
{{- range .Decls}}
{{.}}
{{- end}}
`))

// assemble renders the whole file and re-parses it: imports.Process drops
// the imports no declaration uses and formats the result.
func (g *Generator) assemble(target string, sf *analyze.SourceFile, decls []string) ([]byte, error) {
	data := fileData{
		Package: sf.Package,
		Imports: fileImports(sf),
		Decls:   decls,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, &data); err != nil {
		return nil, fmt.Errorf("executing file template: %w", err)
	}

	formatted, err := imports.Process(target, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		if g.config.WriteDebugUnformatted {
			_ = writeDebugUnformatted(filepath.Dir(target), filepath.Base(target), buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filepath.Base(target), err)
	}

	return formatted, nil
}

// importNames returns the local names the source file's imports bind.
func importNames(sf *analyze.SourceFile) []string {
	var out []string

	for _, imp := range sf.File.Imports {
		if imp.Name != nil {
			if imp.Name.Name != "_" && imp.Name.Name != "." {
				out = append(out, imp.Name.Name)
			}

			continue
		}

		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		out = append(out, common.PkgAlias(p))
	}

	return out
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, extract.ErrNotARecord):
		return CodeNotARecord
	case errors.Is(err, extract.ErrNotAnIdentifier):
		return CodeNotAnIdentifier
	case errors.Is(err, extract.ErrMissingType):
		return CodeMissingType
	case errors.Is(err, extract.ErrUnsupportedType):
		return CodeUnsupportedType
	default:
		return CodeExpansion
	}
}

func errorPos(err error, fallback token.Position) token.Position {
	var expErr *extract.ExpansionError
	if errors.As(err, &expErr) && expErr.Pos.IsValid() {
		return expErr.Pos
	}

	return fallback
}
