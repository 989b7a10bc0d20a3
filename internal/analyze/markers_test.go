package analyze

import (
	"go/ast"
	"go/parser"
	gotoken "go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"attrgen/attr"
	"attrgen/internal/diagnostic"
	"attrgen/token"
)

// parseDecl parses src and returns the first type declaration together
// with a minimal package carrying the file set.
func parseDecl(t *testing.T, src string) (*packages.Package, *ast.GenDecl, *ast.TypeSpec, *ast.StructType) {
	t.Helper()

	fset := gotoken.NewFileSet()
	file, err := parser.ParseFile(fset, "probe.go", src, parser.ParseComments)
	require.NoError(t, err)
	require.NotEmpty(t, file.Decls)

	gen, ok := file.Decls[0].(*ast.GenDecl)
	require.True(t, ok)
	spec, ok := gen.Specs[0].(*ast.TypeSpec)
	require.True(t, ok)
	st, ok := spec.Type.(*ast.StructType)
	require.True(t, ok)

	return &packages.Package{Fset: fset}, gen, spec, st
}

func TestResolveAttrName(t *testing.T) {
	tests := []struct {
		testName string
		src      string
		name     string
		marked   bool
	}{
		{
			testName: "default snake case",
			src: `package p

//+attrgen
type MyWidget struct{}
`,
			name:   "my_widget",
			marked: true,
		},
		{
			testName: "override",
			src: `package p

//+attrgen("gadget")
type MyWidget struct{}
`,
			name:   "gadget",
			marked: true,
		},
		{
			testName: "last override wins",
			src: `package p

//+attrgen("first")
//+attrgen("second")
type MyWidget struct{}
`,
			name:   "second",
			marked: true,
		},
		{
			testName: "bad override shape ignored",
			src: `package p

//+attrgen(gadget)
type MyWidget struct{}
`,
			name:   "my_widget",
			marked: true,
		},
		{
			testName: "not marked",
			src: `package p

// MyWidget has no marker.
type MyWidget struct{}
`,
			name:   "my_widget",
			marked: false,
		},
		{
			testName: "foreign markers do not mark",
			src: `package p

//+deepcopy-gen
type MyWidget struct{}
`,
			name:   "my_widget",
			marked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			pkg, gen, spec, _ := parseDecl(t, tt.src)
			a := NewAnalyzer()

			name, marked := a.resolveAttrName(pkg, spec.Name.Name, gen.Doc)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.marked, marked)
		})
	}
}

func TestMarkerLiteral(t *testing.T) {
	lit := func(args string) attr.Attr {
		return attr.Attr{Name: Marker, Args: []byte(args), Pos: token.Pos{Filename: "probe.go", Line: 1, Col: 1}}
	}

	s, ok := markerLiteral(lit(`("custom_name")`))
	assert.True(t, ok)
	assert.Equal(t, "custom_name", s)

	_, ok = markerLiteral(lit(""))
	assert.False(t, ok)
	_, ok = markerLiteral(lit("()"))
	assert.False(t, ok)
	_, ok = markerLiteral(lit("(custom_name)"))
	assert.False(t, ok)
	_, ok = markerLiteral(lit(`("a", "b")`))
	assert.False(t, ok)
}

func TestClassifyField(t *testing.T) {
	_, _, _, st := parseDecl(t, `package p

type probe struct {
	Flag     *struct{}
	Count    *int
	Name     string
	Shaped   *struct{ X int }
}
`)

	kind, _ := classifyField(st.Fields.List[0].Type)
	assert.Equal(t, attr.Switch, kind)

	kind, elem := classifyField(st.Fields.List[1].Type)
	assert.Equal(t, attr.Optional, kind)
	assert.Equal(t, "int", elem.(*ast.Ident).Name)

	kind, elem = classifyField(st.Fields.List[2].Type)
	assert.Equal(t, attr.Mandatory, kind)
	assert.Equal(t, "string", elem.(*ast.Ident).Name)

	// A pointer to a non-empty struct is not a switch.
	kind, _ = classifyField(st.Fields.List[3].Type)
	assert.Equal(t, attr.Optional, kind)
}

func TestExtractSchemaAnonymousField(t *testing.T) {
	pkg, _, spec, st := parseDecl(t, `package p

//+attrgen
type Broken struct {
	hidden
}
`)

	a := NewAnalyzer()
	_, ok := a.extractSchema(pkg, spec, st, "dir/probe.go", "broken")
	assert.False(t, ok)

	d := a.Diagnostics()
	require.True(t, d.HasErrors())
	assert.Equal(t, diagnostic.CodeAnonymousField, d.Errors[0].Code)
	assert.Equal(t, "Broken", d.Errors[0].Schema)
}

func TestCheckDuplicateNames(t *testing.T) {
	schemas := []SchemaInfo{
		{TypeName: "TableOpts", PkgPath: "example.com/p", AttrName: "opts"},
		{TypeName: "ViewOpts", PkgPath: "example.com/p", AttrName: "opts"},
		{TypeName: "OtherOpts", PkgPath: "example.com/q", AttrName: "opts"},
	}

	a := NewAnalyzer()
	a.checkDuplicateNames(schemas)

	d := a.Diagnostics()
	assert.False(t, d.HasErrors())
	require.Len(t, d.Warnings, 1)
	assert.Equal(t, diagnostic.CodeDuplicateName, d.Warnings[0].Code)
	assert.Equal(t, "ViewOpts", d.Warnings[0].Schema)
}
