package token

import (
	"fmt"
	"go/token"
)

// Pos is a source position. Argument lists live on a single comment
// line, so positions advance by column only.
type Pos struct {
	Filename string
	Line     int
	Col      int
}

// FromPosition converts a go/token position.
func FromPosition(p token.Position) Pos {
	return Pos{Filename: p.Filename, Line: p.Line, Col: p.Column}
}

// Shift returns the position n columns to the right.
func (p Pos) Shift(n int) Pos {
	p.Col += n
	return p
}

// IsValid reports whether the position carries line information.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}
