package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
	"github.com/signadot/jdoc/yamlconv"
)

type EncState struct {
	depth, indent int

	format    format.Format
	wire      bool
	nonFinite NonFinitePolicy

	Color func(ir.Type, ColorAttr, string) string

	scratch []byte
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format.IsYAML() {
		d, err := toYAML(node, es)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	ws := newWriter(w)
	if err := encode(node, ws, es); err != nil {
		return err
	}
	if err := ws.writeString("\n"); err != nil {
		return err
	}
	return ws.flush()
}

// Print returns the text of node.  The text has no trailing newline in JSON
// format.
func Print(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	if es.format.IsYAML() {
		d, err := toYAML(node, es)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	n, err := size(node, es)
	if err != nil {
		return "", err
	}
	b := &builder{}
	b.Grow(n)
	if err := encode(node, b, es); err != nil {
		return "", err
	}
	if b.Len() != n {
		return "", fmt.Errorf("%w: measured %d bytes, wrote %d", ErrEncoding, n, b.Len())
	}
	return b.String(), nil
}

// PrintInto writes the text of node into buf and returns the number of bytes
// written.  If the text does not fit, it returns a *CapacityError and the
// contents of buf are undefined.  Nothing is written beyond len(buf).
func PrintInto(node *ir.Node, buf []byte, opts ...EncodeOption) (int, error) {
	es := newEncState(opts)
	if es.format.IsYAML() {
		d, err := toYAML(node, es)
		if err != nil {
			return 0, err
		}
		if len(d) > len(buf) {
			return 0, &CapacityError{Need: len(d), Have: len(buf)}
		}
		return copy(buf, d), nil
	}
	b := &bounded{buf: buf}
	err := encode(node, b, es)
	if err == nil {
		return b.n, nil
	}
	if !errors.Is(err, ErrCapacity) {
		return 0, err
	}
	es.depth = 0
	need, err := size(node, es)
	if err != nil {
		return 0, err
	}
	return 0, &CapacityError{Need: need, Have: len(buf)}
}

// Size returns the length of the text Print would return.
func Size(node *ir.Node, opts ...EncodeOption) (int, error) {
	es := newEncState(opts)
	if es.format.IsYAML() {
		d, err := toYAML(node, es)
		if err != nil {
			return 0, err
		}
		return len(d), nil
	}
	return size(node, es)
}

func size(node *ir.Node, es *EncState) (int, error) {
	c := &counter{}
	if err := encode(node, c, es); err != nil {
		return 0, err
	}
	return c.n, nil
}

func toYAML(node *ir.Node, es *EncState) ([]byte, error) {
	if es.nonFinite == NonFiniteError {
		if err := checkFinite(node); err != nil {
			return nil, err
		}
	}
	yopts := []yamlconv.ToOption{yamlconv.ToIndent(max(es.indent, 1))}
	if es.nonFinite == NonFiniteNull {
		yopts = append(yopts, yamlconv.ToNonFiniteNull())
	}
	d, err := yamlconv.ToYAML(node, yopts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}

func checkFinite(node *ir.Node) error {
	return node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.NumberType {
			return true, nil
		}
		if math.IsNaN(y.Float64) || math.IsInf(y.Float64, 0) {
			return false, nonFiniteErr(y)
		}
		return true, nil
	})
}

func nonFiniteErr(y *ir.Node) error {
	return fmt.Errorf("%w %v at %q", ErrNonFinite, y.Float64, y.KPath())
}

func encode(node *ir.Node, s sink, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return es.value(s, ir.NullType, "null")
	case ir.BoolType:
		return es.value(s, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		f := node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if es.nonFinite == NonFiniteError {
				return nonFiniteErr(node)
			}
			return es.value(s, ir.NullType, "null")
		}
		es.scratch = AppendNumber(es.scratch[:0], f)
		return es.valueBytes(s, ir.NumberType, es.scratch)
	case ir.StringType:
		es.scratch = token.AppendQuote(es.scratch[:0], node.String)
		return es.valueBytes(s, ir.StringType, es.scratch)
	case ir.ArrayType:
		return encodeArray(node, s, es)
	case ir.ObjectType:
		return encodeObject(node, s, es)
	default:
		panic(fmt.Sprintf("encode: unknown type %d", node.Type))
	}
}

func encodeArray(node *ir.Node, s sink, es *EncState) error {
	if len(node.Values) == 0 {
		return es.sep(s, ir.ArrayType, "[]")
	}
	if err := es.sep(s, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := es.sep(s, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(s, es); err != nil {
			return err
		}
		if err := encode(v, s, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(s, es); err != nil {
		return err
	}
	return es.sep(s, ir.ArrayType, "]")
}

func encodeObject(node *ir.Node, s sink, es *EncState) error {
	if len(node.Values) == 0 {
		return es.sep(s, ir.ObjectType, "{}")
	}
	if err := es.sep(s, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := es.sep(s, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		if err := writeNL(s, es); err != nil {
			return err
		}
		if err := es.field(s, v.ParentField); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		if err := es.sep(s, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(v, s, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(s, es); err != nil {
		return err
	}
	return es.sep(s, ir.ObjectType, "}")
}

// AppendNumber appends the JSON text of a finite number to dst.
func AppendNumber(dst []byte, f float64) []byte {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		if f == 0 && math.Signbit(f) {
			return append(dst, "-0"...)
		}
		return strconv.AppendInt(dst, int64(f), 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

func writeNL(s sink, es *EncState) error {
	if es.wire {
		return nil
	}
	return s.writeString("\n" + strings.Repeat(" ", es.indent*es.depth))
}

func (es *EncState) value(s sink, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return s.writeString(v)
}

func (es *EncState) valueBytes(s sink, t ir.Type, v []byte) error {
	if es.Color != nil {
		return s.writeString(es.Color(t, ValueColor, string(v)))
	}
	return s.write(v)
}

func (es *EncState) field(s sink, key string) error {
	es.scratch = token.AppendQuote(es.scratch[:0], key)
	if es.Color != nil {
		return s.writeString(es.Color(ir.ObjectType, FieldColor, string(es.scratch)))
	}
	return s.write(es.scratch)
}

func (es *EncState) sep(s sink, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, SepColor, v)
	}
	return s.writeString(v)
}
