// Package diagnostic provides structured, located warnings and errors
// for the attrgen analyzer and generator.
//
// Key capabilities:
//   - Declaration errors (anonymous fields, unsupported field types)
//   - Duplicate-name and no-schema notices
//   - Colorized one-line terminal rendering
package diagnostic
