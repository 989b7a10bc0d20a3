package gen

import (
	"text/template"

	"attrgen/internal/analyze"
)

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName string
	Imports     []analyze.ImportSpec
	Schemas     []schemaData
}

type schemaData struct {
	TypeName   string
	VarName    string
	HelperName string
	AttrName   string
	Fields     []fieldData
}

type fieldData struct {
	GoName     string
	ArgName    string
	KindExpr   string
	ParserExpr string
	ValueType  string
	IsSwitch   bool
	IsOptional bool
}

var glueTemplate = template.Must(
	template.New("glue").
		Parse(`// Code generated by attrgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Schemas}}
// {{.VarName}} describes the {{.AttrName}} argument list.
var {{.VarName}} = attr.Schema{
	Name: "{{.AttrName}}",
	Fields: []attr.FieldSpec{
{{- range .Fields}}
		{Name: "{{.ArgName}}", Kind: {{.KindExpr}}{{if not .IsSwitch}}, Value: {{.ParserExpr}}{{end}}},
{{- end}}
	},
}

// AttrName returns the attribute name {{.TypeName}} is parsed from.
func ({{.TypeName}}) AttrName() string {
	return "{{.AttrName}}"
}

// Try{{.TypeName}}FromAttributes parses the first //+{{.AttrName}} attribute
// in attrs. It returns nil without error when no attribute matches.
func Try{{.TypeName}}FromAttributes(attrs []attr.Attr) (*{{.TypeName}}, error) {
	in, err := {{.VarName}}.TryFromAttributes(attrs)
	if err != nil || in == nil {
		return nil, err
	}
	return {{.HelperName}}(in), nil
}

// {{.TypeName}}FromAttributes parses the first //+{{.AttrName}} attribute
// in attrs and fails when no attribute matches.
func {{.TypeName}}FromAttributes(attrs []attr.Attr) (*{{.TypeName}}, error) {
	in, err := {{.VarName}}.FromAttributes(attrs)
	if err != nil {
		return nil, err
	}
	return {{.HelperName}}(in), nil
}

func {{.HelperName}}(in *attr.Instance) *{{.TypeName}} {
	out := &{{.TypeName}}{}
{{- range .Fields}}
{{- if .IsSwitch}}
	if in.Present("{{.ArgName}}") {
		out.{{.GoName}} = &struct{}{}
	}
{{- else if .IsOptional}}
	if v, ok := in.Lookup("{{.ArgName}}"); ok {
		val := v.({{.ValueType}})
		out.{{.GoName}} = &val
	}
{{- else}}
	out.{{.GoName}} = in.Value("{{.ArgName}}").({{.ValueType}})
{{- end}}
{{- end}}
	return out
}
{{end}}`))
