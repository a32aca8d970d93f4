package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jdoc/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
	ErrTrailing = errors.New("trailing content")
	ErrDepth    = errors.New("nesting too deep")
)

// Error is a parse failure at a byte offset of the input.  Line and Col are
// 1-based.
type Error struct {
	Offset int
	Line   int
	Col    int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d (line %d col %d): %s", ErrParse, e.Offset, e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func toError(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	line, col := te.Pos.LineCol()
	return &Error{
		Offset: te.Pos.I,
		Line:   line + 1,
		Col:    col + 1,
		Err:    te.Err,
	}
}
