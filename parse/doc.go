// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "Tom", "age": 24}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse YAML input
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Parsing either returns a complete tree or an error, never part of a tree.
// Errors are of type *Error and carry the byte offset of the failure.
//
// Input must be exactly one JSON value surrounded by optional whitespace
// unless ParseAllowTrailing is given, in which case parsing stops at the end
// of the first value and ParseEnd can report where that was.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - IR representation
//   - github.com/signadot/jdoc/encode - Encode IR to text
//   - github.com/signadot/jdoc/token - Tokenization
package parse
