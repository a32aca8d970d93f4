// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// documents to IR nodes.
//
// Nodes are printed compact, patched by github.com/evanphx/json-patch and
// parsed back, so the results are new trees.  Objects which pass through a
// merge patch come back with their keys sorted.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

var ErrPatch = errors.New("patch")

func wire(node *ir.Node) ([]byte, error) {
	s, err := encode.Print(node, encode.EncodeWire(true), encode.NonFinite(encode.NonFiniteError))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func result(d []byte, err error) (*ir.Node, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(d)
}

// Apply applies the RFC 6902 operations in ops, an array of operation
// objects, to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: operations must be an array, got %s", ErrPatch, ops.Type)
	}
	docD, err := wire(doc)
	if err != nil {
		return nil, err
	}
	opsD, err := wire(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(opsD)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d operations to %v\n", len(p), doc)
	}
	return result(p.Apply(docD))
}

// Merge applies the RFC 7386 merge patch mp to doc.
func Merge(doc, mp *ir.Node) (*ir.Node, error) {
	docD, err := wire(doc)
	if err != nil {
		return nil, err
	}
	mpD, err := wire(mp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merging %v into %v\n", mp, doc)
	}
	return result(jsonpatch.MergePatch(docD, mpD))
}

// CreateMerge returns a merge patch which turns from into to.
func CreateMerge(from, to *ir.Node) (*ir.Node, error) {
	fromD, err := wire(from)
	if err != nil {
		return nil, err
	}
	toD, err := wire(to)
	if err != nil {
		return nil, err
	}
	return result(jsonpatch.CreateMergePatch(fromD, toD))
}

// Compose returns a single merge patch with the effect of applying a and
// then b.
func Compose(a, b *ir.Node) (*ir.Node, error) {
	aD, err := wire(a)
	if err != nil {
		return nil, err
	}
	bD, err := wire(b)
	if err != nil {
		return nil, err
	}
	return result(jsonpatch.MergeMergePatches(aD, bD))
}
