package ir

import (
	"fmt"
	"slices"
)

// adoptable checks that child may be attached under y.
func (y *Node) adoptable(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.Parent != nil {
		return fmt.Errorf("%w (at %s)", ErrHasParent, child.KPath())
	}
	for p := y; p != nil; p = p.Parent {
		if p == child {
			return ErrCycle
		}
	}
	return nil
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// Append adds child to the end of the array y.
func (y *Node) Append(child *Node) error {
	if y.Type != ArrayType {
		return typeErr("Append", ArrayType, y)
	}
	if err := y.adoptable(child); err != nil {
		return err
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	child.ParentField = ""
	y.Values = append(y.Values, child)
	return nil
}

// Insert places child at position i of the array y, shifting later
// elements.  An i at or past the end appends.
func (y *Node) Insert(i int, child *Node) error {
	if y.Type != ArrayType {
		return typeErr("Insert", ArrayType, y)
	}
	if i < 0 {
		return fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	if err := y.adoptable(child); err != nil {
		return err
	}
	i = min(i, len(y.Values))
	child.Parent = y
	child.ParentField = ""
	y.Values = slices.Insert(y.Values, i, child)
	y.reindex(i)
	return nil
}

// Set adds child to the end of the object y under key.  Existing children
// with the same key are kept.
func (y *Node) Set(key string, child *Node) error {
	if y.Type != ObjectType {
		return typeErr("Set", ObjectType, y)
	}
	if err := y.adoptable(child); err != nil {
		return err
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	child.ParentField = key
	y.Values = append(y.Values, child)
	return nil
}

func (y *Node) add(key string, child *Node) (*Node, error) {
	if err := y.Set(key, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (y *Node) AddNull(key string) (*Node, error) {
	return y.add(key, Null())
}

func (y *Node) AddBool(key string, v bool) (*Node, error) {
	return y.add(key, FromBool(v))
}

func (y *Node) AddNumber(key string, v float64) (*Node, error) {
	return y.add(key, FromFloat(v))
}

func (y *Node) AddString(key, v string) (*Node, error) {
	return y.add(key, FromString(v))
}

func (y *Node) AddObject(key string) (*Node, error) {
	return y.add(key, NewObject())
}

func (y *Node) AddArray(key string) (*Node, error) {
	return y.add(key, NewArray())
}

// Detach unlinks y from its parent and returns it.  Detaching a root is a
// no-op.
func (y *Node) Detach() *Node {
	p := y.Parent
	if p == nil {
		return y
	}
	i := y.ParentIndex
	p.Values = slices.Delete(p.Values, i, i+1)
	p.reindex(i)
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
	return y
}

// Replace puts child at position i of the array or object y.  In an object
// the child takes the key of the node it replaces.  The replaced node is
// detached.
func (y *Node) Replace(i int, child *Node) error {
	switch y.Type {
	case ArrayType, ObjectType:
	default:
		return typeErr("Replace", ArrayType, y)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: index %d of %d", ErrNotFound, i, len(y.Values))
	}
	old := y.Values[i]
	if child == old {
		return nil
	}
	if err := y.adoptable(child); err != nil {
		return err
	}
	child.Parent = y
	child.ParentIndex = i
	child.ParentField = old.ParentField
	y.Values[i] = child
	old.Parent = nil
	old.ParentIndex = 0
	old.ParentField = ""
	return nil
}

// ReplaceField replaces the first child of y with key.
func (y *Node) ReplaceField(key string, child *Node) error {
	if y.Type != ObjectType {
		return typeErr("ReplaceField", ObjectType, y)
	}
	i := y.fieldIndex(key)
	if i == -1 {
		return fmt.Errorf("%w: field %q", ErrNotFound, key)
	}
	return y.Replace(i, child)
}

// Remove detaches and returns the first child of y with key, or nil.
func (y *Node) Remove(key string) *Node {
	c := y.Get(key)
	if c == nil {
		return nil
	}
	return c.Detach()
}
