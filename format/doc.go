// Package format names the document text formats jdoc reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	name := "out" + f.Suffix()
//
// JSON is the native format of the engine; YAML is supported through
// conversion in github.com/signadot/jdoc/yamlconv.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/parse - Parse text to IR
//   - github.com/signadot/jdoc/encode - Encode IR to text
package format
