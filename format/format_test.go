package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"j", "json"} {
		f, err := ParseFormat(name)
		if err != nil || f != JSONFormat {
			t.Errorf("%q: got %v %v", name, f, err)
		}
	}
	for _, name := range []string{"y", "yaml", "yml"} {
		f, err := ParseFormat(name)
		if err != nil || f != YAMLFormat {
			t.Errorf("%q: got %v %v", name, f, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"new.json":      JSONFormat,
		"a/b/c.yaml":    YAMLFormat,
		"c.yml":         YAMLFormat,
		"noext":         JSONFormat,
		"dir.yaml/file": JSONFormat,
		"weird.txt":     JSONFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("FromPath(%q) = %s, want %s", p, got, want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
	}
}
