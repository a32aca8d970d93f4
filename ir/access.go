package ir

import (
	"fmt"
	"math"
)

func (y *Node) fieldIndex(name string) int {
	for i, v := range y.Values {
		if v.ParentField == name {
			return i
		}
	}
	return -1
}

// Get returns the first child of the object y with key name.  It returns nil
// if y is not an object or has no such key.
func (y *Node) Get(name string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	i := y.fieldIndex(name)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Index returns element i of the array y, or nil.
func (y *Node) Index(i int) *Node {
	if y == nil || y.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len is the number of children of an array or object and 0 otherwise.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ArrayType, ObjectType:
		return len(y.Values)
	default:
		return 0
	}
}

// Lookup is Get with errors.
func (y *Node) Lookup(name string) (*Node, error) {
	if y == nil {
		return nil, ErrNilNode
	}
	if y.Type != ObjectType {
		return nil, typeErr("Lookup", ObjectType, y)
	}
	res := y.Get(name)
	if res == nil {
		return nil, fmt.Errorf("%w: field %q", ErrNotFound, name)
	}
	return res, nil
}

func (y *Node) AsString() (string, error) {
	if y == nil {
		return "", ErrNilNode
	}
	if y.Type != StringType {
		return "", typeErr("AsString", StringType, y)
	}
	return y.String, nil
}

func (y *Node) AsNumber() (float64, error) {
	if y == nil {
		return 0, ErrNilNode
	}
	if y.Type != NumberType {
		return 0, typeErr("AsNumber", NumberType, y)
	}
	return y.Float64, nil
}

// AsInt truncates a number toward zero, saturating at the bounds of int.
// NaN gives 0.
func (y *Node) AsInt() (int, error) {
	f, err := y.AsNumber()
	if err != nil {
		return 0, err
	}
	switch {
	case math.IsNaN(f):
		return 0, nil
	case f >= math.MaxInt:
		return math.MaxInt, nil
	case f <= math.MinInt:
		return math.MinInt, nil
	}
	return int(f), nil
}

func (y *Node) AsBool() (bool, error) {
	if y == nil {
		return false, ErrNilNode
	}
	if y.Type != BoolType {
		return false, typeErr("AsBool", BoolType, y)
	}
	return y.Bool, nil
}
