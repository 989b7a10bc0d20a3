package token

// Tree returns the index one past the token tree starting at toks[i]: a
// balanced bracket group when toks[i] opens one, otherwise the single
// token itself. An unmatched bracket yields ErrUnbalanced located at
// the opener.
func Tree(toks []Token, i int) (int, error) {
	if i >= len(toks) {
		return i, nil
	}
	open := &toks[i]
	if !open.IsOpen() {
		if open.IsClose() {
			return i, scanErr(ErrUnbalanced, open.Pos)
		}
		return i + 1, nil
	}

	var stack []Type
	stack = append(stack, open.Type)
	for j := i + 1; j < len(toks); j++ {
		t := &toks[j]
		switch {
		case t.IsOpen():
			stack = append(stack, t.Type)
		case t.IsClose():
			if !closes(stack[len(stack)-1], t.Type) {
				return i, scanErr(ErrUnbalanced, t.Pos)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return j + 1, nil
			}
		}
	}
	return i, scanErr(ErrUnbalanced, open.Pos)
}
