package main

import (
	"testing"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/ir/kpath"
	"github.com/signadot/jdoc/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func wire(t *testing.T, node *ir.Node) string {
	t.Helper()
	return encode.MustString(node, encode.EncodeWire(true))
}

const people = `{"people":[
  {"name":"Tom","age":24},
  {"name":"Ann","age":31},
  {"name":"Bob","age":17}
]}`

func TestListDoc(t *testing.T) {
	doc := mustParse(t, people)
	tests := []struct {
		path, where, want string
	}{
		{"people", "", `[{"name":"Tom","age":24},{"name":"Ann","age":31},{"name":"Bob","age":17}]`},
		{"people", "age >= 18", `[{"name":"Tom","age":24},{"name":"Ann","age":31}]`},
		{"people[*].name", "", `["Tom","Ann","Bob"]`},
		{"people[0]", "", `["Tom",24]`},
		{"people[*].age", "root > 20", `[24,31]`},
	}
	for _, tc := range tests {
		res, err := listDoc(doc, kpath.MustParse(tc.path), tc.where)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got := wire(t, res); got != tc.want {
			t.Errorf("%s where %q: got %s want %s", tc.path, tc.where, got, tc.want)
		}
	}
	if _, err := listDoc(doc, kpath.MustParse("nope"), ""); err == nil {
		t.Error("expected error for missing path")
	}
	if doc.Get("people").Len() != 3 {
		t.Error("list modified the document")
	}
}

func TestDiffDocs(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":[1,2]}`)
	b := mustParse(t, `{"a":2,"b":[1,2],"c":true}`)
	d, err := diffDocs(a, a.Clone(), false)
	if err != nil || d != nil {
		t.Errorf("equal docs: %v %v", d, err)
	}
	d, err = diffDocs(a, b, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, d); got != `{"a":2,"c":true}` {
		t.Errorf("merge diff: %s", got)
	}
	d, err = diffDocs(a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if d.Type != ir.ArrayType || d.Len() != 2 {
		t.Errorf("change list: %s", wire(t, d))
	}
}

func TestPatchDoc(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2}}`)
	res, err := patchDoc(doc, mustParse(t, `[{"op":"replace","path":"/b/c","value":3}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, res); got != `{"a":1,"b":{"c":3}}` {
		t.Errorf("got %s", got)
	}
	res, err = patchDoc(doc, mustParse(t, `{"a":null,"d":"x"}`), true)
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, res); got != `{"b":{"c":2},"d":"x"}` {
		t.Errorf("got %s", got)
	}
}

func TestEvalDoc(t *testing.T) {
	doc := mustParse(t, people)
	res, err := evalDoc(doc, `map(people, .name)`)
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, res); got != `["Tom","Ann","Bob"]` {
		t.Errorf("got %s", got)
	}
	doc = mustParse(t, `{"n":2,"s":"n is $[n]","t":".[n * 2]"}`)
	res, err = evalDoc(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(t, res); got != `{"n":2,"s":"n is 2","t":4}` {
		t.Errorf("got %s", got)
	}
}
