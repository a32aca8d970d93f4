package ir

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/jdoc/ir/kpath"
	"github.com/signadot/jdoc/token"
)

var ErrWild = errors.New("wildcard in single node path")

// KPath returns the kinded path of node from its root, such as
// "love[2].games[0]".  The root has path "".
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	prefix := node.Parent.KPath()
	switch node.Parent.Type {
	case ObjectType:
		f := node.ParentField
		if token.KPathQuoteField(f) {
			f = token.Quote(f)
		}
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		return prefix + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetKPath finds the node at path kp below node.  The result is part of the
// tree rooted at node, not a copy.
//
// A missing field or out of range index gives an error wrapping ErrNotFound;
// a field step on a non-object or an index step on a non-array gives a
// *TypeError.
func (node *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.GetPath(p)
}

func (node *Node) GetPath(kp *kpath.KPath) (*Node, error) {
	res := node
	for x := kp; x != nil; x = x.Next {
		switch {
		case x.FieldAll, x.IndexAll:
			return nil, fmt.Errorf("%w: %s", ErrWild, kp)
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%s: %w", res.KPath(), typeErr("index", ArrayType, res))
			}
			i := *x.Index
			if i < 0 || i >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of bounds (len %d) at %q", ErrNotFound, i, len(res.Values), res.KPath())
			}
			res = res.Values[i]
		case x.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%s: %w", res.KPath(), typeErr("field", ObjectType, res))
			}
			next := res.Get(*x.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: field %q at %q", ErrNotFound, *x.Field, res.KPath())
			}
			res = next
		}
	}
	return res, nil
}

// ListKPath appends to dst every node below node matching kp, which may
// contain the wildcards .* and [*].  Steps which do not apply to a node,
// such as an index on an object or a missing field, contribute nothing.
// All fields with a matching key are listed, not only the first.
func (node *Node) ListKPath(dst []*Node, kp string) ([]*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.ListPath(dst, p), nil
}

// ListPath is ListKPath for a parsed path.
func (node *Node) ListPath(dst []*Node, kp *kpath.KPath) []*Node {
	if kp == nil {
		return append(dst, node)
	}
	switch node.Type {
	case ObjectType:
		switch {
		case kp.FieldAll:
			for _, v := range node.Values {
				dst = v.ListPath(dst, kp.Next)
			}
		case kp.Field != nil:
			for _, v := range node.Values {
				if v.ParentField != *kp.Field {
					continue
				}
				dst = v.ListPath(dst, kp.Next)
			}
		}
	case ArrayType:
		switch {
		case kp.IndexAll:
			for _, v := range node.Values {
				dst = v.ListPath(dst, kp.Next)
			}
		case kp.Index != nil:
			if v := node.Index(*kp.Index); v != nil {
				dst = v.ListPath(dst, kp.Next)
			}
		}
	}
	return dst
}
