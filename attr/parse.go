package attr

import "attrgen/token"

// Parse matches one attribute's argument list against the schema.
//
// Entries are comma separated and order independent: a bare `name` for
// a switch, `name = value` otherwise. A later entry for the same name
// overwrites an earlier one. Entries whose name matches no field are
// skipped; their value must be a single well-formed token tree, a
// multi-token ungrouped value under an unknown name fails the parse.
func (s *Schema) Parse(a Attr) (*Instance, error) {
	toks, err := token.Tokenize(a.Args, a.Pos)
	if err != nil {
		return nil, err
	}

	if len(toks) == 0 || toks[0].Type != token.LParen {
		return nil, parseErr(ErrNoParens, a.Pos)
	}
	if end, err := token.Tree(toks, 0); err != nil {
		return nil, err
	} else if end != len(toks) {
		return nil, parseErr(ErrNoParens, toks[end].Pos)
	}

	endPos := toks[len(toks)-1].Pos
	c := newCursor(toks[1:len(toks)-1], endPos)

	in := &Instance{
		schema:  s,
		present: make(map[string]bool),
		values:  make(map[string]any),
	}

	for !c.Empty() {
		if err := s.parseEntry(c, in); err != nil {
			return nil, err
		}

		// Entries are comma separated; the trailing comma is optional.
		if t, ok := c.Peek(); ok {
			if t.Type != token.Comma {
				return nil, parseErr(ErrExpectComma, t.Pos)
			}
			c.Next()
		}
	}

	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Kind != Mandatory {
			continue
		}
		if _, ok := in.values[f.Name]; !ok {
			return nil, &MissingFieldError{Schema: s.Name, Field: f.Name, Pos: endPos}
		}
	}

	return in, nil
}

// parseEntry consumes one `name` or `name = value` entry.
func (s *Schema) parseEntry(c *Cursor, in *Instance) error {
	t, _ := c.Next()
	if t.Type != token.Ident {
		return parseErr(ErrExpectIdent, t.Pos)
	}
	name := t.Text()

	f := s.field(name)
	if f == nil {
		return skipUnknown(c)
	}

	if f.Kind == Switch {
		in.present[name] = true
		return nil
	}

	eq, ok := c.Next()
	if !ok || eq.Type != token.Assign {
		pos := c.end
		if ok {
			pos = eq.Pos
		}
		return parseErr(ErrExpectAssign, pos)
	}

	v, err := f.Value(c)
	if err != nil {
		return err
	}
	in.values[name] = v
	return nil
}

// skipUnknown discards the remainder of an unrecognized entry: nothing
// for a bare name, `=` plus one token tree for a value form.
func skipUnknown(c *Cursor) error {
	t, ok := c.Peek()
	if !ok || t.Type != token.Assign {
		return nil
	}
	c.Next()
	_, err := c.Tree()
	return err
}
