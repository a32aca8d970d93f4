package ir

import (
	"errors"
	"math"
	"testing"
)

func TestGetFirstMatch(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
		{Key: "A", Val: FromInt(3)},
	})
	if v, _ := obj.Get("a").AsNumber(); v != 1 {
		t.Errorf("got %v", v)
	}
	if v, _ := obj.Get("A").AsNumber(); v != 3 {
		t.Errorf("case sensitive: got %v", v)
	}
	if obj.Get("b") != nil {
		t.Error("missing key")
	}
	if FromStrings([]string{"a"}).Get("a") != nil {
		t.Error("Get on array")
	}
	var nilNode *Node
	if nilNode.Get("a") != nil {
		t.Error("Get on nil")
	}
	if _, err := obj.Lookup("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v", err)
	}
	if _, err := FromInt(1).Lookup("b"); !errors.Is(err, ErrType) {
		t.Errorf("got %v", err)
	}
}

func TestIndexLen(t *testing.T) {
	arr := FromStrings([]string{"x", "y", "z"})
	if arr.Len() != 3 {
		t.Errorf("len %d", arr.Len())
	}
	if s, _ := arr.Index(2).AsString(); s != "z" {
		t.Errorf("got %q", s)
	}
	for _, i := range []int{-1, 3, 100} {
		if arr.Index(i) != nil {
			t.Errorf("index %d not absent", i)
		}
	}
	obj := FromMap(map[string]*Node{"a": Null(), "b": Null()})
	if obj.Index(0) != nil {
		t.Error("Index on object")
	}
	if obj.Len() != 2 {
		t.Errorf("object len %d", obj.Len())
	}
	if FromString("abc").Len() != 0 || Null().Len() != 0 {
		t.Error("leaf len")
	}
}

func TestAs(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		f    func(*Node) (any, error)
		want any
		err  error
	}{
		{"string", FromString("Tom"), asString, "Tom", nil},
		{"number", FromInt(24), asNumber, 24.0, nil},
		{"bool", FromBool(true), asBool, true, nil},
		{"int", FromFloat(-3.9), asInt, -3, nil},
		{"int max", FromFloat(1e300), asInt, math.MaxInt, nil},
		{"int min", FromFloat(math.Inf(-1)), asInt, math.MinInt, nil},
		{"int nan", FromFloat(math.NaN()), asInt, 0, nil},
		{"string of number", FromInt(1), asString, "", ErrType},
		{"number of string", FromString("1"), asNumber, 0.0, ErrType},
		{"bool of null", Null(), asBool, false, ErrType},
		{"int of bool", FromBool(true), asInt, 0, ErrType},
		{"nil", nil, asString, "", ErrNilNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f(tt.node)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err %v want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func asString(y *Node) (any, error) { return y.AsString() }
func asNumber(y *Node) (any, error) { return y.AsNumber() }
func asBool(y *Node) (any, error)   { return y.AsBool() }
func asInt(y *Node) (any, error)    { return y.AsInt() }

func TestTypeErrorMessage(t *testing.T) {
	_, err := FromInt(1).AsString()
	want := "type mismatch: AsString on Number (want String)"
	if err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{Null(), false},
		{FromBool(false), false},
		{FromBool(true), true},
		{FromInt(0), false},
		{FromFloat(0.5), true},
		{FromString(""), false},
		{FromString("x"), true},
		{NewArray(), false},
		{FromInts([]int64{0}), true},
		{NewObject(), false},
	}
	for _, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("Truth(%s %v) = %t", tt.node.Type, tt.node.Values, got)
		}
	}
}
