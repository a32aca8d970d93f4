package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Values      []*Node

	String  string
	Bool    bool
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: float64(v),
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// FromSlice makes an array of ySlice.  The elements must not have a parent.
func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

func FromStrings(vs []string) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromString(v)
	}
	return FromSlice(res)
}

func FromInts(vs []int64) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromInt(v)
	}
	return FromSlice(res)
}

func FromFloats(vs []float64) *Node {
	res := make([]*Node, len(vs))
	for i, v := range vs {
		res[i] = FromFloat(v)
	}
	return FromSlice(res)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals makes an object with the keys and values of kvs, in order.
// The values must not have a parent.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap makes an object from yMap with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

// ToMap returns the fields of an object as a map.  When a key occurs more
// than once, the first occurrence is kept.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Values))
	for _, v := range node.Values {
		if _, present := res[v.ParentField]; present {
			continue
		}
		res[v.ParentField] = v
	}
	return res
}

// Clone returns a deep copy of y.  The copy is a root.
func (y *Node) Clone() *Node {
	res := y.cloneTo(&Node{})
	return res
}

func (y *Node) cloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Float64 = y.Float64
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := yv.cloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
