// Package analyze provides package loading and attribute schema extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// struct types marked with //+attrgen, resolve each schema's attribute
// name, and classify every field as mandatory, optional, or switch.
//
// Key types:
//   - SchemaInfo: one marked struct and its resolved argument schema
//   - FieldInfo: one field's argument name, kind, and value parser
package analyze
