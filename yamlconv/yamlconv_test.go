package yamlconv

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/jdoc/ir"
)

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"null", "null\n", ir.Null()},
		{"int", "24\n", ir.FromInt(24)},
		{"negative", "-3\n", ir.FromInt(-3)},
		{"float", "37.7668\n", ir.FromFloat(37.7668)},
		{"string", "Tom\n", ir.FromString("Tom")},
		{"quoted", "\"24\"\n", ir.FromString("24")},
		{"bool", "true\n", ir.FromBool(true)},
		{"seq", "- a\n- b\n", ir.FromStrings([]string{"a", "b"})},
		{"flow", "[1, 2, 3]\n", ir.FromInts([]int64{1, 2, 3})},
		{
			"map order",
			"z: 1\na: [x]\nm: {}\n",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "z", Val: ir.FromInt(1)},
				{Key: "a", Val: ir.FromStrings([]string{"x"})},
				{Key: "m", Val: ir.NewObject()},
			}),
		},
		{
			"int key",
			"1: one\n",
			ir.FromKeyVals([]ir.KeyVal{{Key: "1", Val: ir.FromString("one")}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromYAML([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("got %s %v", got.Type, ToValue(got))
			}
		})
	}
}

func TestFromYAMLError(t *testing.T) {
	_, err := FromYAML([]byte("a: [1, 2\n"))
	if !errors.Is(err, ErrYAML) {
		t.Errorf("got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Tom")},
		{Key: "age", Val: ir.FromInt(24)},
		{Key: "ratio", Val: ir.FromFloat(0.25)},
		{Key: "love", Val: ir.FromSlice([]*ir.Node{
			ir.FromString("basketball"),
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "games", Val: ir.FromStrings([]string{"LOL", "CF"})},
			}),
		})},
		{Key: "none", Val: ir.Null()},
		{Key: "ok", Val: ir.FromBool(false)},
		{Key: "multi", Val: ir.FromString("a\nb\n")},
		{Key: "numeric", Val: ir.FromString("123")},
	})
	d, err := ToYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("%v:\n%s", err, d)
	}
	if !ir.Equal(doc, back) {
		t.Errorf("round trip differs:\n%s", d)
	}
}

func TestToValueNumbers(t *testing.T) {
	tests := []struct {
		in   float64
		want any
	}{
		{24, int64(24)},
		{-1, int64(-1)},
		{1.5, 1.5},
		{1 << 53, float64(1 << 53)},
		{math.Copysign(0, -1), math.Copysign(0, -1)},
	}
	for _, tt := range tests {
		got := ToValue(ir.FromFloat(tt.in))
		if got != tt.want {
			t.Errorf("%v: got %T %v", tt.in, got, got)
		}
	}
}

func TestToYAMLNonFinite(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "inf", Val: ir.FromFloat(math.Inf(1))},
		{Key: "nan", Val: ir.FromFloat(math.NaN())},
		{Key: "n", Val: ir.FromInt(1)},
	})
	d, err := ToYAML(doc, ToNonFiniteNull())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "inf: null\nnan: null\nn: 1\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	d, err = ToYAML(doc)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(d), "null") {
		t.Errorf("non-finite numbers should stay numbers without ToNonFiniteNull:\n%s", d)
	}
}
