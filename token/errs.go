package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrUnexpected        = errors.New("unexpected character")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrEmptyDoc          = errors.New("empty document")
	ErrTrailing          = errors.New("trailing data")
	ErrDepth             = errors.New("maximum depth exceeded")
	ErrNumber            = errors.New("number")
)

// FormatError is returned by the tokenizer and both parsers.  It
// carries the input offset at which the error was detected.
type FormatError struct {
	Err error
	Pos Pos
}

func NewFormatError(e error, p *Pos) *FormatError {
	return &FormatError{Err: e, Pos: *p}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

// Offset returns the byte offset in the input where the error occurred.
func (e *FormatError) Offset() int {
	return e.Pos.I
}

func ExpectedErr(what string, p *Pos) error {
	return NewFormatError(fmt.Errorf("%w: expected %s", ErrUnexpected, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewFormatError(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
