// Package encode writes IR nodes as JSON or YAML text.
//
// # Usage
//
//	// Pretty JSON with a trailing newline
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact JSON as a string
//	s, err := encode.Print(node, encode.EncodeWire(true))
//
//	// Into caller memory
//	buf := make([]byte, 256)
//	n, err := encode.PrintInto(node, buf)
//
// All entry points share one tree walk writing to a sink.  Print measures
// the output first and allocates exactly that much; PrintInto never writes
// past len(buf) and fails with a *CapacityError when the output does not
// fit, leaving buf with undefined contents.
//
// # Numbers
//
// Integral numbers of magnitude below 2^53 are written without a fraction.
// Others are written in the shortest form which parses back to the same
// float64.  NaN and infinities have no JSON form: by default they are
// written as null, see NonFinite.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - IR representation
//   - github.com/signadot/jdoc/parse - Parse text to IR
package encode
