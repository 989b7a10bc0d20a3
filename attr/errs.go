package attr

import (
	"errors"
	"fmt"

	"attrgen/token"
)

var (
	ErrNoParens     = errors.New("argument list must be parenthesized")
	ErrExpectIdent  = errors.New("expected an argument name")
	ErrExpectAssign = errors.New("expected `=`")
	ErrExpectComma  = errors.New("expected `,` between arguments")
	ErrBadValue     = errors.New("bad argument value")
)

// ParseError is a malformed-argument-list error located at the
// offending token.
type ParseError struct {
	Pos token.Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(err error, pos token.Pos) error {
	return &ParseError{Pos: pos, Err: err}
}

// MissingFieldError reports a mandatory field with no argument. Pos is
// the end of the argument list.
type MissingFieldError struct {
	Schema string
	Field  string
	Pos    token.Pos
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: `%s` is missing `%s` argument", e.Pos, e.Schema, e.Field)
}

// MissingAttrError reports that a required attribute was not found.
type MissingAttrError struct {
	Name string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("missing attribute `//+%s`", e.Name)
}
