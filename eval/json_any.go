package eval

import (
	"fmt"
	"math"
	"reflect"

	"github.com/signadot/jdoc/ir"
)

// ToAny converts node to plain Go values: map[string]any, []any, string,
// bool, nil, and int for integral numbers of magnitude below 2^53 or
// float64 otherwise.  For repeated keys the first occurrence wins.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Values))
		for _, v := range node.Values {
			if _, present := res[v.ParentField]; present {
				continue
			}
			res[v.ParentField] = ToAny(v)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		f := node.Float64
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return f
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts the result of an expression back to a node.  Maps
// become objects with sorted keys.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		if x == nil {
			return ir.Null(), nil
		}
		return x.Clone(), nil
	case []*ir.Node:
		res := make([]*ir.Node, len(x))
		for i, y := range x {
			res[i] = y.Clone()
		}
		return ir.FromSlice(res), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case []any:
		res := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return ir.FromSlice(res), nil
	case map[string]any:
		res := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return ir.FromMap(res), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (*ir.Node, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromFloat(float64(rv.Uint())), nil
	case reflect.Slice, reflect.Array:
		res := make([]*ir.Node, rv.Len())
		for i := range rv.Len() {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return ir.FromSlice(res), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		res := make(map[string]*ir.Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			n, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			res[iter.Key().String()] = n
		}
		return ir.FromMap(res), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a node", rv.Interface())
}
