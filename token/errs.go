package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadRune      = errors.New("unexpected rune")
	ErrUnbalanced   = errors.New("unbalanced brackets")
)

// ScanError is a tokenization error located in the source.
type ScanError struct {
	Pos Pos
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func scanErr(err error, pos Pos) error {
	return &ScanError{Pos: pos, Err: err}
}
