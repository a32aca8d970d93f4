// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of *Node values. Each node has a Type, fixed when the
// node is made, and the value fields meaningful for that type:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Float64
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Values, in order, each child carrying its key in ParentField
//
// The node is a tagged union: code working with nodes switches on Type and
// reads the corresponding field.
//
// # Ownership
//
// Every node except a root has exactly one parent, recorded in Parent and
// ParentIndex. The mutators (Append, Set, Insert, Replace, ...) refuse to
// adopt a node which already has a parent, and refuse to make a node a
// descendant of itself, so a tree can never share or cycle. Detach unlinks a
// node from its parent, after which it is an independent root; dropping the
// last reference to a root releases the whole tree.
//
// # Creating Nodes
//
//	root := ir.NewObject()
//	root.AddString("name", "Tom")
//	root.AddNumber("age", 24)
//	love, _ := root.AddArray("love")
//	love.Append(ir.FromString("basketball"))
//
// or all at once:
//
//	root := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Tom")},
//	    {Key: "age", Val: ir.FromInt(24)},
//	})
//
// # Reading Nodes
//
// Get and Index return nil when there is nothing to return; Lookup, GetKPath
// and the As* accessors return errors which wrap ErrNotFound or ErrType:
//
//	name, err := root.Get("name").AsString()
//	game, err := root.GetKPath("love[2].games[0]")
//
// Object keys need not be unique. Lookups by key return the first child with
// that key in insertion order.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/parse - Parse text to IR
//   - github.com/signadot/jdoc/encode - Encode IR to text
//   - github.com/signadot/jdoc/ir/kpath - Kinded paths
package ir
