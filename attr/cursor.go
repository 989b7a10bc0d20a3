package attr

import "attrgen/token"

// Cursor is a forward-only reader over an argument list's tokens. Value
// parsers consume from it and must stop at the first token they do not
// own, normally a top-level comma or the end of input.
type Cursor struct {
	toks []token.Token
	i    int
	end  token.Pos
}

func newCursor(toks []token.Token, end token.Pos) *Cursor {
	return &Cursor{toks: toks, end: end}
}

// Empty reports whether all tokens are consumed.
func (c *Cursor) Empty() bool {
	return c.i >= len(c.toks)
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (*token.Token, bool) {
	if c.Empty() {
		return nil, false
	}
	return &c.toks[c.i], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (*token.Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.i++
	}
	return t, ok
}

// Pos returns the position of the next token, or the end of input.
func (c *Cursor) Pos() token.Pos {
	if t, ok := c.Peek(); ok {
		return t.Pos
	}
	return c.end
}

// Tree consumes one well-formed token tree and returns its tokens.
func (c *Cursor) Tree() ([]token.Token, error) {
	end, err := token.Tree(c.toks, c.i)
	if err != nil {
		return nil, err
	}
	tree := c.toks[c.i:end]
	c.i = end
	return tree, nil
}

// ValueTokens consumes token trees up to, but not including, the next
// top-level comma or the end of input.
func (c *Cursor) ValueTokens() ([]token.Token, error) {
	start := c.i
	for {
		t, ok := c.Peek()
		if !ok || t.Type == token.Comma {
			return c.toks[start:c.i], nil
		}
		if _, err := c.Tree(); err != nil {
			return nil, err
		}
	}
}
