package ir

import (
	"errors"
	"fmt"
)

var (
	ErrType      = errors.New("type mismatch")
	ErrNotFound  = errors.New("not found")
	ErrHasParent = errors.New("node already has a parent")
	ErrCycle     = errors.New("node cannot contain itself")
	ErrNilNode   = errors.New("nil node")
)

// TypeError reports an operation applied to a node of the wrong type.
type TypeError struct {
	Op   string
	Want Type
	Got  Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s on %s (want %s)", ErrType, e.Op, e.Got, e.Want)
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

func typeErr(op string, want Type, y *Node) error {
	return &TypeError{Op: op, Want: want, Got: y.Type}
}
