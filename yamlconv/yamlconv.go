// Package yamlconv converts between IR nodes and YAML text.
//
// Objects are carried as yaml.MapSlice in both directions so that key order
// and duplicate keys survive conversion.
package yamlconv

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jdoc/ir"
)

var ErrYAML = errors.New("yaml")

// FromYAML decodes a single YAML document.  An empty document is null.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return FromValue(v)
}

// FromValue converts a value as decoded by go-yaml with UseOrderedMap.
func FromValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []byte:
		return ir.FromString(string(x)), nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			en, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			if err := res.Append(en); err != nil {
				return nil, err
			}
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range x {
			val, err := FromValue(item.Value)
			if err != nil {
				return nil, err
			}
			if err := res.Set(keyString(item.Key), val); err != nil {
				return nil, err
			}
		}
		return res, nil
	case map[string]any:
		kvs := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			en, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			kvs[k] = en
		}
		return ir.FromMap(kvs), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrYAML, v)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}

type ToOption func(*toOpts)

type toOpts struct {
	indent        int
	nonFiniteNull bool
}

// ToIndent sets the number of spaces per level in the output.
func ToIndent(n int) ToOption {
	return func(o *toOpts) { o.indent = n }
}

// ToNonFiniteNull renders NaN and infinities as null rather than as .nan
// and .inf.
func ToNonFiniteNull() ToOption {
	return func(o *toOpts) { o.nonFiniteNull = true }
}

// ToYAML renders node as a YAML document ending in a newline.
func ToYAML(node *ir.Node, opts ...ToOption) ([]byte, error) {
	o := &toOpts{indent: 2}
	for _, f := range opts {
		f(o)
	}
	return yaml.MarshalWithOptions(toValue(node, o),
		yaml.Indent(o.indent),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true))
}

// ToValue converts node to the values go-yaml marshals, with objects as
// yaml.MapSlice.  Integral numbers become int64.
func ToValue(node *ir.Node) any {
	return toValue(node, &toOpts{})
}

func toValue(node *ir.Node, o *toOpts) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		f := node.Float64
		if o.nonFiniteNull && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return nil
		}
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !(f == 0 && math.Signbit(f)) {
			return int64(f)
		}
		return f
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toValue(v, o)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, v := range node.Values {
			res[i] = yaml.MapItem{Key: v.ParentField, Value: toValue(v, o)}
		}
		return res
	default:
		panic("type")
	}
}
