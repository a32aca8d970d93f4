package gomap

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

type person struct {
	Name string   `json:"name"`
	Age  int      `json:"age"`
	Love []any    `json:"love"`
	Tags []string `json:"tags,omitempty"`
}

const tomJSON = `{"name":"Tom","age":24,"love":["basketball","swim",{"games":["LOL","CF"]}]}`

func TestLoad(t *testing.T) {
	var p person
	if err := Load([]byte(tomJSON), &p); err != nil {
		t.Fatal(err)
	}
	want := person{
		Name: "Tom",
		Age:  24,
		Love: []any{"basketball", "swim", map[string]any{"games": []any{"LOL", "CF"}}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromGo(t *testing.T) {
	node, err := FromGo(person{Name: "Tom", Age: 24, Love: []any{"basketball"}})
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node, encode.EncodeWire(true))
	if want := `{"name":"Tom","age":24,"love":["basketball"]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestToGoErrors(t *testing.T) {
	var p person
	err := ToGo(ir.FromString("x"), &p)
	if !errors.Is(err, ErrGoMap) {
		t.Errorf("got %v", err)
	}
	err = ToGo(ir.FromFloat(math.Inf(1)), new(float64))
	if !errors.Is(err, encode.ErrNonFinite) {
		t.Errorf("got %v", err)
	}
	if _, err := FromGo(make(chan int)); !errors.Is(err, ErrGoMap) {
		t.Errorf("got %v", err)
	}
}

type upper string

func (u *upper) FromIR(node *ir.Node) error {
	s, err := node.AsString()
	if err != nil {
		return err
	}
	*u = upper(s + "!")
	return nil
}

func (u upper) ToIR() (*ir.Node, error) {
	return ir.FromString(string(u) + "?"), nil
}

func TestIRInterfaces(t *testing.T) {
	var u upper
	if err := ToGo(ir.FromString("hi"), &u); err != nil {
		t.Fatal(err)
	}
	if u != "hi!" {
		t.Errorf("got %q", u)
	}
	node, err := FromGo(u)
	if err != nil {
		t.Fatal(err)
	}
	if node.String != "hi!?" {
		t.Errorf("got %q", node.String)
	}
	if err := ToGo(ir.FromInt(1), &u); !errors.Is(err, ir.ErrType) {
		t.Errorf("got %v", err)
	}
}
