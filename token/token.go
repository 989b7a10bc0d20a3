package token

// Type is the lexical class of a token.
type Type int

const (
	Invalid Type = iota
	Ident        // bare identifier
	String       // double-quoted Go string literal, quotes included
	Number       // integer or floating point literal
	Assign       // =
	Comma        // ,
	LParen       // (
	RParen       // )
	LBrack       // [
	RBrack       // ]
	LBrace       // {
	RBrace       // }
	Punct        // any other printable rune
)

// String returns a human-readable name for the token type.
func (t Type) String() string {
	switch t {
	case Ident:
		return "ident"
	case String:
		return "string"
	case Number:
		return "number"
	case Assign:
		return "="
	case Comma:
		return ","
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrack:
		return "["
	case RBrack:
		return "]"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Punct:
		return "punct"
	default:
		return "invalid"
	}
}

// Token is one lexical element of an argument list.
type Token struct {
	Type  Type
	Bytes []byte
	Pos   Pos
}

// Text returns the token's source text.
func (t *Token) Text() string {
	return string(t.Bytes)
}

// IsOpen reports whether the token opens a bracket group.
func (t *Token) IsOpen() bool {
	return t.Type == LParen || t.Type == LBrack || t.Type == LBrace
}

// IsClose reports whether the token closes a bracket group.
func (t *Token) IsClose() bool {
	return t.Type == RParen || t.Type == RBrack || t.Type == RBrace
}

// closes reports whether close matches the opening bracket type open.
func closes(open, close Type) bool {
	switch open {
	case LParen:
		return close == RParen
	case LBrack:
		return close == RBrack
	case LBrace:
		return close == RBrace
	default:
		return false
	}
}
