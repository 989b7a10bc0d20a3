// Package attr is the runtime for attrgen-generated code.
//
// A marker attribute is a comment line of the form
//
//	//+name(arg, key = value, ...)
//
// attached to a Go declaration. [FromCommentGroup] collects the raw
// attributes of a declaration, a [Schema] describes the argument list
// one attribute accepts, and [Schema.Parse] matches an attribute's
// arguments against the schema. Generated code builds the Schema and
// moves parsed values into typed struct fields; hand-written descriptors
// work the same way.
package attr
