// Package token provides tokenization for marker attribute argument lists.
//
// [Tokenize] splits the raw text of one argument list, parentheses
// included, into positioned tokens. [Tree] discovers the extent of one
// well-formed token tree (a single token or a balanced bracket group),
// which the parser uses to skip values it does not understand.
package token
