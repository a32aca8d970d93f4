package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

func TestRunDemo(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := runDemo(&buf, dir); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`"name": "Jack (\"Bee\") Nimble"`,
		`"frame rate": 24`,
		`"Saturday"`,
		`"Url": "http:/*www.example.com/image/481948843"`,
		`"Longitude": -122.3959`,
		`"Latitude": 37.371991`,
		`"Number": null`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s", want)
		}
	}
	tail := "file len = 145\nname = Tom\nage = 24\nlove: [basketball, swim, { games:[LOL CF ] }]\n"
	if !strings.HasSuffix(out, tail) {
		t.Errorf("got tail\n%s", cmp.Diff(tail, out[max(0, len(out)-len(tail)):]))
	}
	d, err := os.ReadFile(filepath.Join(dir, "new.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 145 {
		t.Errorf("new.json has %d bytes", len(d))
	}
}

func TestRunDemoWire(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, t.TempDir(), encode.EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[[0,-1,0],[1,0,0],[0,0,1]]\n") {
		t.Error("missing compact matrix")
	}
	if !strings.Contains(buf.String(), "file len = 76\n") {
		t.Error("wrong compact file length")
	}
}

func TestDemoDocsRoundTrip(t *testing.T) {
	samples, err := demoDocs()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range samples {
		text, err := encode.Print(s.node)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		back, err := parse.ParseString(text)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if s.name == "division by zero" {
			if back.Get("Number").Type != ir.NullType {
				t.Errorf("%s: got %s", s.name, back.Get("Number").Type)
			}
			continue
		}
		if !ir.Equal(s.node, back) {
			t.Errorf("%s: round trip differs:\n%s", s.name, text)
		}
	}
}

func TestPrintPreallocatedEmpty(t *testing.T) {
	var buf bytes.Buffer
	for _, node := range []*ir.Node{ir.Null(), ir.NewArray(), ir.FromString("")} {
		if err := printPreallocated(&buf, node); err != nil {
			t.Error(err)
		}
	}
	if got := buf.String(); got != "null\n[]\n\"\"\n" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeTomMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")
	if err := os.WriteFile(path, []byte(`{"name":"Tom","age":24}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err := decodeTom(&buf, path)
	if err == nil || !strings.Contains(err.Error(), "not find love") {
		t.Errorf("got %v", err)
	}
}

func TestBuildTom(t *testing.T) {
	tom, err := buildTom()
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(tom, encode.EncodeWire(true))
	want := `{"name":"Tom","age":24,"love":["basketball","swim",{"games":["LOL","CF"]}]}`
	if got != want {
		t.Error(cmp.Diff(want, got))
	}
}

func TestAddedKeepsErrors(t *testing.T) {
	if err := added(ir.NewObject().AddString("k", "v")); err != nil {
		t.Errorf("got %v", err)
	}
	err := added(ir.FromString("leaf").AddNumber("k", 1))
	if !errors.Is(err, ir.ErrType) {
		t.Errorf("got %v want ErrType", err)
	}
}
