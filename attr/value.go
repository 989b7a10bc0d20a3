package attr

import (
	"go/parser"
	"strconv"
	"strings"

	"attrgen/token"
)

// Name is an identifier argument value.
type Name string

// Value is implemented by types that parse their own argument value,
// the way generated glue consumes custom field types.
type Value interface {
	ParseAttr(c *Cursor) error
}

// ValueParser consumes one argument value from the cursor.
type ValueParser func(c *Cursor) (any, error)

// Ident parses a bare identifier into a Name.
func Ident(c *Cursor) (any, error) {
	pos := c.Pos()
	t, ok := c.Next()
	if !ok || t.Type != token.Ident {
		return nil, parseErr(ErrBadValue, pos)
	}
	return Name(t.Text()), nil
}

// String parses a double-quoted Go string literal.
func String(c *Cursor) (any, error) {
	pos := c.Pos()
	t, ok := c.Next()
	if !ok || t.Type != token.String {
		return nil, parseErr(ErrBadValue, pos)
	}
	s, err := strconv.Unquote(t.Text())
	if err != nil {
		return nil, parseErr(ErrBadValue, t.Pos)
	}
	return s, nil
}

// Int parses an integer literal with an optional leading minus.
func Int(c *Cursor) (any, error) {
	pos := c.Pos()
	text := ""
	t, ok := c.Next()
	if ok && t.Type == token.Punct && t.Text() == "-" {
		text = "-"
		t, ok = c.Next()
	}
	if !ok || t.Type != token.Number {
		return nil, parseErr(ErrBadValue, pos)
	}
	n, err := strconv.ParseInt(text+t.Text(), 0, 64)
	if err != nil {
		return nil, parseErr(ErrBadValue, t.Pos)
	}
	return int(n), nil
}

// Bool parses the identifiers true and false.
func Bool(c *Cursor) (any, error) {
	pos := c.Pos()
	t, ok := c.Next()
	if !ok || t.Type != token.Ident {
		return nil, parseErr(ErrBadValue, pos)
	}
	switch t.Text() {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, parseErr(ErrBadValue, t.Pos)
}

// Expr parses a Go expression spanning all tokens up to the next
// top-level comma, via go/parser.
func Expr(c *Cursor) (any, error) {
	pos := c.Pos()
	toks, err := c.ValueTokens()
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, parseErr(ErrBadValue, pos)
	}

	var sb strings.Builder
	for i := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.Write(toks[i].Bytes)
	}

	e, err := parser.ParseExpr(sb.String())
	if err != nil {
		return nil, parseErr(ErrBadValue, pos)
	}
	return e, nil
}

// Custom adapts a Value implementation into a ValueParser. Generated
// glue instantiates it as Custom[T, *T]().
func Custom[T any, PT interface {
	*T
	Value
}]() ValueParser {
	return func(c *Cursor) (any, error) {
		var v T
		if err := PT(&v).ParseAttr(c); err != nil {
			return nil, err
		}
		return v, nil
	}
}
