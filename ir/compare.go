package ir

import (
	"cmp"
	"math"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}

	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares fields pairwise in order, key first.
func compareObjects(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		av, bv := a.Values[i], b.Values[i]
		if c := strings.Compare(av.ParentField, bv.ParentField); c != 0 {
			return c
		}
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// Equal reports whether a and b have the same type and value, with children
// and keys in the same order.  Numbers compare numerically, so 0 and -0 are
// equal, and NaN equals NaN.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if math.IsNaN(a.Float64) {
			return math.IsNaN(b.Float64)
		}
		return a.Float64 == b.Float64
	case StringType:
		return a.String == b.String
	case ArrayType, ObjectType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i, av := range a.Values {
			bv := b.Values[i]
			if av.ParentField != bv.ParentField {
				return false
			}
			if !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}
