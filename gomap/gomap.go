// Package gomap maps between documents and Go values.
//
// Go values go through their encoding/json form, so struct tags, field
// order and custom marshalers behave as they do with encoding/json.  Types
// may instead implement IRFromer or IRToer to work on nodes directly.
package gomap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

var ErrGoMap = errors.New("gomap")

type IRFromer interface {
	FromIR(*ir.Node) error
}

type IRToer interface {
	ToIR() (*ir.Node, error)
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return ToGo(node, p)
}

// ToGo stores node in the value pointed to by p.
func ToGo(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	s, err := encode.Print(node, encode.EncodeWire(true), encode.NonFinite(encode.NonFiniteError))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGoMap, err)
	}
	if err := json.Unmarshal([]byte(s), p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrGoMap, node.KPath(), err)
	}
	return nil
}

// FromGo returns the document for v.
func FromGo(v any) (*ir.Node, error) {
	if x, ok := v.(IRToer); ok {
		return x.ToIR()
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGoMap, err)
	}
	return parse.Parse(d)
}
