package encode

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding  = errors.New("encoding error")
	ErrCapacity  = errors.New("buffer too small")
	ErrNonFinite = errors.New("non-finite number")
)

// CapacityError reports a buffer which cannot hold the output.
type CapacityError struct {
	Need int
	Have int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: need %d bytes, have %d", ErrCapacity, e.Need, e.Have)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}
