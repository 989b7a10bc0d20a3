package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attrgen/attr"
	"attrgen/internal/analyze"
)

func tableOptsInfo() analyze.SchemaInfo {
	return analyze.SchemaInfo{
		TypeName: "TableOpts",
		PkgPath:  "attrgen/examples/basic",
		PkgName:  "basic",
		Dir:      "examples/basic",
		FileName: "source.go",
		AttrName: "table_opts",
		Fields: []analyze.FieldInfo{
			{GoName: "ReadOnly", ArgName: "read_only", Kind: attr.Switch},
			{GoName: "Name", ArgName: "name", Kind: attr.Mandatory,
				Parser: analyze.ParserIdent, ValueType: "attr.Name"},
			{GoName: "Alias", ArgName: "alias", Kind: attr.Optional,
				Parser: analyze.ParserIdent, ValueType: "attr.Name"},
			{GoName: "MaxRows", ArgName: "max_rows", Kind: attr.Optional,
				Parser: analyze.ParserInt, ValueType: "int"},
		},
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	files, err := g.Generate([]analyze.SchemaInfo{tableOptsInfo()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "examples/basic", f.Dir)
	assert.Equal(t, "source_attrs.go", f.Filename)

	content := string(f.Content)
	spew.Dump(f.Filename)

	assert.Contains(t, content, "// Code generated by attrgen. DO NOT EDIT.")
	assert.Contains(t, content, "package basic")
	assert.Contains(t, content, `"attrgen/attr"`)
	assert.Contains(t, content, "var tableOptsSchema = attr.Schema{")
	assert.Contains(t, content, `Name: "table_opts",`)
	assert.Contains(t, content, `{Name: "read_only", Kind: attr.Switch},`)
	assert.Contains(t, content, `{Name: "name", Kind: attr.Mandatory, Value: attr.Ident},`)
	assert.Contains(t, content, `{Name: "max_rows", Kind: attr.Optional, Value: attr.Int},`)
	assert.Contains(t, content, "func (TableOpts) AttrName() string {")
	assert.Contains(t, content, "func TryTableOptsFromAttributes(attrs []attr.Attr) (*TableOpts, error) {")
	assert.Contains(t, content, "func TableOptsFromAttributes(attrs []attr.Attr) (*TableOpts, error) {")
	assert.Contains(t, content, `out.Name = in.Value("name").(attr.Name)`)
	assert.Contains(t, content, `if in.Present("read_only") {`)
	assert.Contains(t, content, `if v, ok := in.Lookup("max_rows"); ok {`)
}

func TestGenerateMatchesCheckedInExample(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	files, err := g.Generate([]analyze.SchemaInfo{tableOptsInfo()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	want, err := os.ReadFile(filepath.Join("..", "..", "examples", "basic", "source_attrs.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(files[0].Content))
}

func TestGenerateCustomParser(t *testing.T) {
	info := analyze.SchemaInfo{
		TypeName: "RouteSpec",
		PkgName:  "routes",
		Dir:      "routes",
		FileName: "spec.go",
		AttrName: "route",
		Fields: []analyze.FieldInfo{
			{GoName: "Path", ArgName: "path", Kind: attr.Mandatory,
				Parser: analyze.ParserCustom, ValueType: "pathValue"},
		},
	}

	g := NewGenerator(DefaultConfig())
	files, err := g.Generate([]analyze.SchemaInfo{info})
	require.NoError(t, err)
	require.Len(t, files, 1)

	content := string(files[0].Content)
	assert.Contains(t, content, "Value: attr.Custom[pathValue, *pathValue]()")
	assert.Contains(t, content, `out.Path = in.Value("path").(pathValue)`)
}

func TestGenerateGroupsByFile(t *testing.T) {
	a := tableOptsInfo()
	b := tableOptsInfo()
	b.TypeName = "ViewOpts"
	b.AttrName = "view_opts"
	c := tableOptsInfo()
	c.FileName = "aaa.go"
	c.TypeName = "OtherOpts"
	c.AttrName = "other_opts"

	g := NewGenerator(DefaultConfig())
	files, err := g.Generate([]analyze.SchemaInfo{a, b, c})
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Output is sorted by path.
	assert.Equal(t, "aaa_attrs.go", files[0].Filename)
	assert.Equal(t, "source_attrs.go", files[1].Filename)

	// Two schemas from the same source file share one generated file.
	content := string(files[1].Content)
	assert.Contains(t, content, "var tableOptsSchema")
	assert.Contains(t, content, "var viewOptsSchema")
}

func TestGenerateSuffix(t *testing.T) {
	g := NewGenerator(Config{Suffix: "_gen.go"})

	files, err := g.Generate([]analyze.SchemaInfo{tableOptsInfo()})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "source_gen.go", files[0].Filename)
}

func TestCollectImports(t *testing.T) {
	a := tableOptsInfo()
	a.Fields[1].Imports = []analyze.ImportSpec{{Path: "attrgen/attr"}}
	b := tableOptsInfo()
	b.Fields = append(b.Fields, analyze.FieldInfo{
		GoName: "Columns", ArgName: "columns", Kind: attr.Mandatory,
		Parser: analyze.ParserExpr, ValueType: "ast.Expr",
		Imports: []analyze.ImportSpec{{Path: "go/ast"}},
	})

	imports := collectImports([]analyze.SchemaInfo{a, b})
	assert.Equal(t, []analyze.ImportSpec{
		{Path: "attrgen/attr"},
		{Path: "go/ast"},
	}, imports)
}

func TestGenerateFormatFailureWritesSidecar(t *testing.T) {
	dir := t.TempDir()

	info := tableOptsInfo()
	info.Dir = dir
	info.TypeName = "not a valid identifier"

	g := NewGenerator(DefaultConfig())
	_, err := g.Generate([]analyze.SchemaInfo{info})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatting source_attrs.go")

	sidecar := filepath.Join(dir, "source_attrs.unformatted.go")
	_, statErr := os.Stat(sidecar)
	assert.NoError(t, statErr)
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{{
		Dir:      filepath.Join(dir, "sub"),
		Filename: "out_attrs.go",
		Content:  []byte("package sub\n"),
	}}

	require.NoError(t, WriteFiles(files))

	got, err := os.ReadFile(filepath.Join(dir, "sub", "out_attrs.go"))
	require.NoError(t, err)
	assert.Equal(t, "package sub\n", string(got))
}
