package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize splits the raw text of one argument list into tokens. The
// base position locates src's first byte in its source file; token
// positions are derived from it by column offset.
func Tokenize(src []byte, base Pos) ([]Token, error) {
	var toks []Token

	i := 0
	col := 0
	for i < len(src) {
		r, sz := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && sz == 1 {
			return nil, scanErr(ErrBadUTF8, base.Shift(col))
		}

		pos := base.Shift(col)
		switch {
		case r == ' ' || r == '\t':
			i += sz
			col++

		case isIdentStart(r):
			n := scanIdent(src[i:])
			toks = append(toks, Token{Type: Ident, Bytes: src[i : i+n], Pos: pos})
			i += n
			col += utf8.RuneCount(src[i-n : i])

		case unicode.IsDigit(r):
			n := scanNumber(src[i:])
			toks = append(toks, Token{Type: Number, Bytes: src[i : i+n], Pos: pos})
			i += n
			col += n

		case r == '"':
			n, err := scanString(src[i:])
			if err != nil {
				return nil, scanErr(err, pos)
			}
			toks = append(toks, Token{Type: String, Bytes: src[i : i+n], Pos: pos})
			i += n
			col += utf8.RuneCount(src[i-n : i])

		default:
			typ, ok := punctType(r)
			if !ok {
				return nil, scanErr(ErrBadRune, pos)
			}
			toks = append(toks, Token{Type: typ, Bytes: src[i : i+sz], Pos: pos})
			i += sz
			col++
		}
	}

	return toks, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanIdent returns the byte length of the identifier at the start of d.
func scanIdent(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if !isIdentPart(r) {
			break
		}
		i += sz
	}
	return i
}

// scanNumber returns the byte length of the number literal at the start
// of d. It accepts digits, hex/binary prefixes, underscores, and a
// decimal point; validity of the literal is the value parser's problem.
func scanNumber(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F':
		case c == 'x' || c == 'X' || c == 'o' || c == 'O':
		case c == '.' || c == '_':
		default:
			return i
		}
		i++
	}
	return i
}

// scanString returns the byte length of the double-quoted string at the
// start of d, quotes included.
func scanString(d []byte) (int, error) {
	i := 1 // opening quote
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		case '\n':
			return 0, ErrUnterminated
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func punctType(r rune) (Type, bool) {
	switch r {
	case '=':
		return Assign, true
	case ',':
		return Comma, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '[':
		return LBrack, true
	case ']':
		return RBrack, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	}
	if unicode.IsGraphic(r) {
		return Punct, true
	}
	return Invalid, false
}
