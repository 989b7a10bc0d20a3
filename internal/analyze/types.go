package analyze

import (
	"attrgen/attr"
	"attrgen/internal/common"
	"attrgen/token"
)

// ParserKind selects the value parser a field's arguments go through.
type ParserKind int

const (
	ParserIdent  ParserKind = iota // attr.Name
	ParserString                   // string
	ParserInt                      // int
	ParserBool                     // bool
	ParserExpr                     // go/ast.Expr
	ParserCustom                   // any type with a ParseAttr method
)

// String returns a human-readable parser name.
func (k ParserKind) String() string {
	switch k {
	case ParserIdent:
		return "ident"
	case ParserString:
		return "string"
	case ParserInt:
		return "int"
	case ParserBool:
		return "bool"
	case ParserExpr:
		return "expr"
	case ParserCustom:
		return "custom"
	default:
		return common.UnknownStr
	}
}

// ImportSpec is an import required by a rendered type reference.
type ImportSpec struct {
	// Alias is empty when the package name matches the path base.
	Alias string
	Path  string
}

// FieldInfo describes one schema struct field.
type FieldInfo struct {
	// GoName is the struct field name.
	GoName string
	// ArgName is the argument key, the snake_case form of GoName.
	ArgName string
	// Kind is the field's argument classification.
	Kind attr.FieldKind
	// Parser picks the value parser; meaningless for switches.
	Parser ParserKind
	// ValueType is the carried value type as Go source, qualified for
	// the schema's own package (e.g. "attr.Name", "semver.Range").
	ValueType string
	// Imports lists the packages ValueType needs beyond the schema's
	// own package.
	Imports []ImportSpec
	// Pos locates the field declaration.
	Pos token.Pos
}

// SchemaInfo describes one marked schema struct.
type SchemaInfo struct {
	// TypeName is the struct type's name.
	TypeName string
	// PkgPath and PkgName identify the declaring package.
	PkgPath string
	PkgName string
	// Dir is the directory of the declaring file; FileName its base name.
	Dir      string
	FileName string
	// AttrName is the resolved attribute name: snake_case of TypeName,
	// unless overridden by a marker argument or a config override.
	AttrName string
	// Pos locates the type declaration.
	Pos token.Pos
	// Fields in declaration order.
	Fields []FieldInfo
}
