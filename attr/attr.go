package attr

import (
	"go/ast"
	gotoken "go/token"
	"strings"

	"attrgen/token"
)

// MarkerPrefix introduces a marker attribute comment.
const MarkerPrefix = "//+"

// Attr is one raw attribute: a marker name plus the unparsed argument
// list text, parentheses included. Args is empty for a bare marker.
type Attr struct {
	Name string
	Args []byte
	Pos  token.Pos
}

// FromCommentGroup extracts the marker attributes of a declaration's
// doc comment, in source order. Non-marker comments are skipped. fset
// locates the comments; it must be the set the group was parsed with.
func FromCommentGroup(fset *gotoken.FileSet, group *ast.CommentGroup) []Attr {
	if group == nil {
		return nil
	}

	var attrs []Attr
	for _, c := range group.List {
		a, ok := parseMarker(c.Text, token.FromPosition(fset.Position(c.Pos())))
		if ok {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// parseMarker splits one comment line into a marker name and its raw
// argument text. pos is the position of the comment's first byte.
func parseMarker(text string, pos token.Pos) (Attr, bool) {
	if !strings.HasPrefix(text, MarkerPrefix) {
		return Attr{}, false
	}
	rest := text[len(MarkerPrefix):]

	n := 0
	for n < len(rest) && isMarkerNameByte(rest[n]) {
		n++
	}
	if n == 0 {
		return Attr{}, false
	}
	name, args := rest[:n], strings.TrimRight(rest[n:], " \t")
	if args != "" && args[0] != '(' {
		// Trailing prose after a bare name is not an attribute.
		return Attr{}, false
	}

	return Attr{
		Name: name,
		Args: []byte(args),
		Pos:  pos.Shift(len(MarkerPrefix) + n),
	}, true
}

func isMarkerNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
