// Package gen provides deterministic Go code generation for attribute
// parsing glue.
//
// Generation approach uses text/template + go/format for readable code.
// Per schema it emits:
//   - an attr.Schema descriptor the runtime interpreter runs against
//   - an AttrName method returning the resolved attribute name
//   - Try<Type>FromAttributes / <Type>FromAttributes lookup functions
//   - an instance-to-struct helper moving typed values into fields
package gen
