package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strconv"

	"github.com/iancoleman/strcase"
	"golang.org/x/tools/go/packages"

	"attrgen/attr"
	"attrgen/internal/common"
	"attrgen/internal/diagnostic"
	"attrgen/token"
)

// Marker is the name of the marker attribute that requests generation.
const Marker = "attrgen"

// attrPkgPath is the import path of the runtime package generated code
// depends on.
const attrPkgPath = "attrgen/attr"

// resolveAttrName scans a struct's doc comment for //+attrgen markers.
// It reports whether the struct is marked at all, and the resolved
// attribute name: snake_case of the type name unless a marker carries a
// string literal argument. With several such markers the last one wins.
func (a *Analyzer) resolveAttrName(pkg *packages.Package, typeName string, doc *ast.CommentGroup) (string, bool) {
	name := strcase.ToSnake(typeName)
	marked := false

	for _, m := range attr.FromCommentGroup(pkg.Fset, doc) {
		if m.Name != Marker {
			continue
		}
		marked = true
		if lit, ok := markerLiteral(m); ok {
			name = lit
		}
	}

	return name, marked
}

// markerLiteral extracts the single string literal argument of a marker
// such as //+attrgen("custom_name"). Markers without arguments, or with
// arguments of any other shape, yield no override.
func markerLiteral(m attr.Attr) (string, bool) {
	toks, err := token.Tokenize(m.Args, m.Pos)
	if err != nil || len(toks) != 3 {
		return "", false
	}
	if toks[0].Type != token.LParen || toks[1].Type != token.String || toks[2].Type != token.RParen {
		return "", false
	}
	s, err := strconv.Unquote(toks[1].Text())
	if err != nil {
		return "", false
	}
	return s, true
}

// extractSchema builds the SchemaInfo for one marked struct. Fields
// that cannot be part of a schema produce error diagnostics and drop
// the whole schema.
func (a *Analyzer) extractSchema(pkg *packages.Package, spec *ast.TypeSpec, st *ast.StructType, filename, attrName string) (SchemaInfo, bool) {
	info := SchemaInfo{
		TypeName: spec.Name.Name,
		PkgPath:  pkg.PkgPath,
		PkgName:  pkg.Name,
		Dir:      filepath.Dir(filename),
		FileName: filepath.Base(filename),
		AttrName: attrName,
		Pos:      position(pkg.Fset, spec),
	}

	ok := true
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			a.diags.AddError(diagnostic.CodeAnonymousField,
				"schema fields must be named", info.TypeName, "", position(pkg.Fset, field))
			ok = false
			continue
		}

		kind, valueExpr := classifyField(field.Type)

		for _, name := range field.Names {
			fi := FieldInfo{
				GoName:  name.Name,
				ArgName: strcase.ToSnake(name.Name),
				Kind:    kind,
				Pos:     position(pkg.Fset, name),
			}

			if kind != attr.Switch {
				parser, typeStr, imports, perr := a.selectParser(pkg, valueExpr)
				if perr != nil {
					a.diags.AddError(diagnostic.CodeUnsupportedField,
						perr.Error(), info.TypeName, fi.ArgName, fi.Pos)
					ok = false
					continue
				}
				fi.Parser = parser
				fi.ValueType = typeStr
				fi.Imports = imports
			}

			info.Fields = append(info.Fields, fi)
		}
	}

	return info, ok
}

// classifyField classifies a declared field type and returns the value
// type expression the field's arguments parse into.
//
// A pointer to the empty struct is a switch, any other pointer is
// optional of its element, and everything else, including types with no
// decomposable shape, falls back to mandatory.
func classifyField(t ast.Expr) (attr.FieldKind, ast.Expr) {
	star, ok := t.(*ast.StarExpr)
	if !ok {
		return attr.Mandatory, t
	}
	if st, ok := star.X.(*ast.StructType); ok && len(st.Fields.List) == 0 {
		return attr.Switch, nil
	}
	return attr.Optional, star.X
}

// selectParser picks the value parser for the carried value type and
// renders the type as source text usable in the schema's own package.
func (a *Analyzer) selectParser(pkg *packages.Package, valueExpr ast.Expr) (ParserKind, string, []ImportSpec, error) {
	t := pkg.TypesInfo.TypeOf(valueExpr)
	if t == nil {
		return 0, "", nil, fmt.Errorf("cannot resolve field type")
	}

	var imports []ImportSpec
	qualifier := func(p *types.Package) string {
		if p.Path() == pkg.PkgPath {
			return ""
		}
		spec := ImportSpec{Path: p.Path()}
		if p.Name() != common.PkgAlias(p.Path()) {
			spec.Alias = p.Name()
		}
		imports = append(imports, spec)
		return p.Name()
	}
	typeStr := types.TypeString(t, qualifier)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil {
			switch {
			case obj.Pkg().Path() == attrPkgPath && obj.Name() == "Name":
				return ParserIdent, typeStr, imports, nil
			case obj.Pkg().Path() == "go/ast" && obj.Name() == "Expr":
				return ParserExpr, typeStr, imports, nil
			}
		}
	}

	if basic, ok := t.Underlying().(*types.Basic); ok && isBasic(t) {
		switch basic.Kind() {
		case types.String:
			return ParserString, typeStr, imports, nil
		case types.Int:
			return ParserInt, typeStr, imports, nil
		case types.Bool:
			return ParserBool, typeStr, imports, nil
		}
	}

	if hasParseAttrMethod(t) {
		return ParserCustom, typeStr, imports, nil
	}

	return 0, "", nil, fmt.Errorf("type %s has no value parser: use attr.Name, string, int, bool, ast.Expr, or a type with a ParseAttr method", typeStr)
}

// isBasic reports whether t is the basic type itself, not a named
// type whose underlying happens to be basic. Named types must opt in
// through the ParseAttr contract so their values keep their meaning.
func isBasic(t types.Type) bool {
	_, ok := t.(*types.Basic)
	return ok
}

// hasParseAttrMethod reports whether *T has a method
// ParseAttr(*attr.Cursor) error.
func hasParseAttrMethod(t types.Type) bool {
	ms := types.NewMethodSet(types.NewPointer(t))
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || fn.Name() != "ParseAttr" {
			continue
		}
		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
			return false
		}

		ptr, ok := sig.Params().At(0).Type().(*types.Pointer)
		if !ok {
			return false
		}
		named, ok := ptr.Elem().(*types.Named)
		if !ok || named.Obj().Name() != "Cursor" {
			return false
		}
		if p := named.Obj().Pkg(); p == nil || p.Path() != attrPkgPath {
			return false
		}

		return sig.Results().At(0).Type().String() == "error"
	}
	return false
}
