package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"attrgen/attr"
	"attrgen/internal/analyze"
	"attrgen/internal/common"
)

// attrImportPath is the runtime package every generated file imports.
const attrImportPath = "attrgen/attr"

// Config holds configuration for code generation.
type Config struct {
	// Suffix replaces the ".go" of each source file to name its
	// generated sibling (e.g. "_attrs.go").
	Suffix string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Suffix: "_attrs.go",
	}
}

// Generator generates attribute parsing glue for analyzed schemas.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the source file the schemas came from.
	Dir string
	// Filename is the base name of the file (e.g. "source_attrs.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per source file that declares schemas. The
// result is ordered by directory and file name.
func (g *Generator) Generate(schemas []analyze.SchemaInfo) ([]GeneratedFile, error) {
	byFile := make(map[string][]analyze.SchemaInfo)
	var keys []string
	for _, s := range schemas {
		key := s.Dir + "/" + s.FileName
		if _, ok := byFile[key]; !ok {
			keys = append(keys, key)
		}
		byFile[key] = append(byFile[key], s)
	}
	sort.Strings(keys)

	var files []GeneratedFile
	for _, key := range keys {
		file, err := g.generateFile(byFile[key])
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}

	return files, nil
}

// generateFile emits the glue for all schemas of one source file.
func (g *Generator) generateFile(schemas []analyze.SchemaInfo) (*GeneratedFile, error) {
	first, ok := common.First(schemas)
	if !ok {
		return nil, fmt.Errorf("no schemas to generate")
	}

	outName := strings.TrimSuffix(first.FileName, ".go") + g.config.Suffix

	data := &templateData{
		PackageName: first.PkgName,
		Imports:     collectImports(schemas),
	}
	for i := range schemas {
		data.Schemas = append(data.Schemas, buildSchemaData(&schemas[i]))
	}

	var buf bytes.Buffer
	if err := glueTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	debugDump(outName, buf.Bytes())

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep an unformatted sidecar to aid debugging the
		// templates, and return the raw output with the error.
		_ = writeDebugUnformatted(first.Dir, outName, buf.Bytes())

		return &GeneratedFile{
			Dir:      first.Dir,
			Filename: outName,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting %s: %w (unformatted code returned)", outName, err)
	}

	return &GeneratedFile{
		Dir:      first.Dir,
		Filename: outName,
		Content:  formatted,
	}, nil
}

// collectImports gathers the deduplicated, sorted imports of one
// generated file: the runtime package plus whatever the value types of
// the schemas reference.
func collectImports(schemas []analyze.SchemaInfo) []analyze.ImportSpec {
	seen := map[string]analyze.ImportSpec{
		attrImportPath: {Path: attrImportPath},
	}
	for i := range schemas {
		for _, f := range schemas[i].Fields {
			for _, imp := range f.Imports {
				seen[imp.Path] = imp
			}
		}
	}

	out := make([]analyze.ImportSpec, 0, len(seen))
	for _, imp := range seen {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out
}

// buildSchemaData converts one SchemaInfo to template form.
func buildSchemaData(s *analyze.SchemaInfo) schemaData {
	lower := strcase.ToLowerCamel(s.TypeName)

	sd := schemaData{
		TypeName:   s.TypeName,
		VarName:    lower + "Schema",
		HelperName: lower + "FromInstance",
		AttrName:   s.AttrName,
	}

	for _, f := range s.Fields {
		fd := fieldData{
			GoName:     f.GoName,
			ArgName:    f.ArgName,
			KindExpr:   kindExpr(f.Kind),
			IsSwitch:   f.Kind == attr.Switch,
			IsOptional: f.Kind == attr.Optional,
			ValueType:  f.ValueType,
		}
		if !fd.IsSwitch {
			fd.ParserExpr = parserExpr(f)
		}
		sd.Fields = append(sd.Fields, fd)
	}

	return sd
}

func kindExpr(k attr.FieldKind) string {
	switch k {
	case attr.Switch:
		return "attr.Switch"
	case attr.Optional:
		return "attr.Optional"
	default:
		return "attr.Mandatory"
	}
}

func parserExpr(f analyze.FieldInfo) string {
	switch f.Parser {
	case analyze.ParserIdent:
		return "attr.Ident"
	case analyze.ParserString:
		return "attr.String"
	case analyze.ParserInt:
		return "attr.Int"
	case analyze.ParserBool:
		return "attr.Bool"
	case analyze.ParserExpr:
		return "attr.Expr"
	case analyze.ParserCustom:
		return fmt.Sprintf("attr.Custom[%s, *%s]()", f.ValueType, f.ValueType)
	default:
		return "attr.Ident"
	}
}
