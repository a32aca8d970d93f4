package encode_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

func tom() *ir.Node {
	root := ir.NewObject()
	root.AddString("name", "Tom")
	root.AddNumber("age", 24)
	love, _ := root.AddArray("love")
	love.Append(ir.FromString("basketball"))
	love.Append(ir.FromString("swim"))
	games := ir.NewObject()
	games.Set("games", ir.FromStrings([]string{"LOL", "CF"}))
	love.Append(games)
	return root
}

func samples() map[string]*ir.Node {
	return map[string]*ir.Node{
		"null":   ir.Null(),
		"true":   ir.FromBool(true),
		"number": ir.FromFloat(-122.3959),
		"string": ir.FromString("Jack (\"Bee\") Nimble\n\t\u00e9"),
		"empty":  ir.NewObject(),
		"tom":    tom(),
		"matrix": ir.FromSlice([]*ir.Node{
			ir.FromInts([]int64{1, 0, 0}),
			ir.FromInts([]int64{0, 1, 0}),
			ir.FromInts([]int64{0, 0, 1}),
		}),
		"nested empties": ir.FromKeyVals([]ir.KeyVal{
			{Key: "a", Val: ir.NewArray()},
			{Key: "o", Val: ir.NewObject()},
			{Key: "", Val: ir.FromSlice([]*ir.Node{ir.NewArray(), ir.Null()})},
		}),
	}
}

func TestPrint(t *testing.T) {
	doc := tom()
	compact, err := encode.Print(doc, encode.EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Tom","age":24,"love":["basketball","swim",{"games":["LOL","CF"]}]}`
	if compact != want {
		t.Errorf("compact:\n%s", cmp.Diff(want, compact))
	}
	pretty, err := encode.Print(doc)
	if err != nil {
		t.Fatal(err)
	}
	want = `{
  "name": "Tom",
  "age": 24,
  "love": [
    "basketball",
    "swim",
    {
      "games": [
        "LOL",
        "CF"
      ]
    }
  ]
}`
	if pretty != want {
		t.Errorf("pretty:\n%s", cmp.Diff(want, pretty))
	}
	tabbed, err := encode.Print(ir.FromInts([]int64{1}), encode.Indent(4))
	if err != nil {
		t.Fatal(err)
	}
	if tabbed != "[\n    1\n]" {
		t.Errorf("indent 4: %q", tabbed)
	}
}

func TestPrintEmpties(t *testing.T) {
	got := encode.MustString(samples()["nested empties"])
	want := "{\n  \"a\": [],\n  \"o\": {},\n  \"\": [\n    [],\n    null\n  ]\n}"
	if got != want {
		t.Error(cmp.Diff(want, got))
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{24, "24"},
		{-1, "-1"},
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{37.7668, "37.7668"},
		{-122.3959, "-122.3959"},
		{0.1, "0.1"},
		{1e21, "1e+21"},
		{1 << 53, "9.007199254740992e+15"},
		{1<<53 - 1, "9007199254740991"},
		{1.5e-7, "1.5e-07"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
		{math.NaN(), "null"},
	}
	for _, tt := range tests {
		got, err := encode.Print(ir.FromFloat(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v: got %s want %s", tt.in, got, tt.want)
		}
		if math.IsInf(tt.in, 0) || math.IsNaN(tt.in) {
			continue
		}
		back, err := parse.ParseString(got)
		if err != nil {
			t.Fatal(err)
		}
		if back.Float64 != tt.in || math.Signbit(back.Float64) != math.Signbit(tt.in) {
			t.Errorf("%s parsed back as %v", got, back.Float64)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	zero := 0.0
	doc := ir.NewObject()
	doc.AddNumber("number", 1/zero)
	s, err := encode.Print(doc, encode.EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	if s != `{"number":null}` {
		t.Errorf("got %s", s)
	}
	back, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	if back.Get("number").Type != ir.NullType {
		t.Errorf("got %s", back.Get("number").Type)
	}
	_, err = encode.Print(doc, encode.NonFinite(encode.NonFiniteError))
	if !errors.Is(err, encode.ErrNonFinite) {
		t.Errorf("got %v", err)
	}
	if _, err := encode.PrintInto(doc, make([]byte, 100), encode.NonFinite(encode.NonFiniteError)); !errors.Is(err, encode.ErrNonFinite) {
		t.Errorf("PrintInto: got %v", err)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{`Jack ("Bee") Nimble`, `"Jack (\"Bee\") Nimble"`},
		{"a\\b/c", `"a\\b/c"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"h\u00e9llo \u4e16", "\"h\u00e9llo \u4e16\""},
		{"bad \xff", "\"bad \ufffd\""},
	}
	for _, tt := range tests {
		got, err := encode.Print(ir.FromString(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("got %s want %s", got, tt.want)
		}
	}
}

func TestPrintIntoExact(t *testing.T) {
	for name, doc := range samples() {
		for _, wire := range []bool{false, true} {
			opt := encode.EncodeWire(wire)
			want, err := encode.Print(doc, opt)
			if err != nil {
				t.Fatal(err)
			}
			size, err := encode.Size(doc, opt)
			if err != nil {
				t.Fatal(err)
			}
			if size != len(want) {
				t.Errorf("%s: size %d len %d", name, size, len(want))
			}
			buf := make([]byte, len(want))
			n, err := encode.PrintInto(doc, buf, opt)
			if err != nil {
				t.Fatalf("%s wire=%t: %v", name, wire, err)
			}
			if got := string(buf[:n]); got != want {
				t.Errorf("%s wire=%t:\n%s", name, wire, cmp.Diff(want, got))
			}
		}
	}
}

func TestPrintIntoShort(t *testing.T) {
	const guard = 0xa5
	for name, doc := range samples() {
		for _, wire := range []bool{false, true} {
			opt := encode.EncodeWire(wire)
			size, err := encode.Size(doc, opt)
			if err != nil {
				t.Fatal(err)
			}
			for have := size - 1; have >= 0; have-- {
				backing := bytes.Repeat([]byte{guard}, size+8)
				// fail the same way each time
				for range 2 {
					_, err := encode.PrintInto(doc, backing[:have], opt)
					var ce *encode.CapacityError
					if !errors.As(err, &ce) {
						t.Fatalf("%s wire=%t have %d: got %v", name, wire, have, err)
					}
					if ce.Need != size || ce.Have != have {
						t.Errorf("%s: got %+v", name, ce)
					}
					if !errors.Is(err, encode.ErrCapacity) {
						t.Errorf("%s: not ErrCapacity", name)
					}
				}
				for i, c := range backing[have:] {
					if c != guard {
						t.Fatalf("%s wire=%t have %d: wrote at %d", name, wire, have, have+i)
					}
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for name, doc := range samples() {
		for _, wire := range []bool{false, true} {
			s, err := encode.Print(doc, encode.EncodeWire(wire))
			if err != nil {
				t.Fatal(err)
			}
			back, err := parse.ParseString(s)
			if err != nil {
				t.Fatalf("%s: %v\n%s", name, err, s)
			}
			if !ir.Equal(doc, back) {
				t.Errorf("%s wire=%t: round trip differs\n%s", name, wire, s)
			}
		}
	}
}

func TestEncode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tom(), buf, encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := encode.MustString(tom(), encode.EncodeWire(true)) + "\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
}

func TestYAML(t *testing.T) {
	opt := encode.EncodeFormat(format.YAMLFormat)
	s, err := encode.Print(tom(), opt)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(s, "name: Tom\nage: 24\nlove:\n") {
		t.Errorf("got\n%s", s)
	}
	back, err := parse.ParseString(s, parse.ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(back, tom()) {
		t.Errorf("yaml round trip differs:\n%s", s)
	}
	if _, err := encode.PrintInto(tom(), make([]byte, len(s)-1), opt); !errors.Is(err, encode.ErrCapacity) {
		t.Errorf("got %v", err)
	}
	buf := make([]byte, len(s))
	if n, err := encode.PrintInto(tom(), buf, opt); err != nil || string(buf[:n]) != s {
		t.Errorf("got %d %v", n, err)
	}
}

func TestYAMLNonFinite(t *testing.T) {
	zero := 0.0
	doc := ir.NewObject()
	doc.AddNumber("number", 1/zero)
	opt := encode.EncodeFormat(format.YAMLFormat)
	s, err := encode.Print(doc, opt)
	if err != nil {
		t.Fatal(err)
	}
	if s != "number: null\n" {
		t.Errorf("got %q", s)
	}
	back, err := parse.ParseString(s, parse.ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if back.Get("number").Type != ir.NullType {
		t.Errorf("got %s", back.Get("number").Type)
	}
	_, err = encode.Print(doc, opt, encode.NonFinite(encode.NonFiniteError))
	if !errors.Is(err, encode.ErrNonFinite) {
		t.Errorf("got %v", err)
	}
}

func TestColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: encode.FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.NumberType, Attr: encode.ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	opts := []encode.EncodeOption{encode.EncodeWire(true), encode.EncodeColors(colors)}
	got, err := encode.Print(doc, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if got != `{<"a">:#1}` {
		t.Errorf("got %s", got)
	}
	buf := make([]byte, len(got))
	if _, err := encode.PrintInto(doc, buf, opts...); err != nil {
		t.Error(err)
	}
}
