package parse

import (
	"github.com/signadot/jdoc/format"
)

// DefaultMaxDepth is the default limit on nested arrays and objects.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format        format.Format
	allowTrailing bool
	end           *int
	maxDepth      int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseAllowTrailing accepts input which continues after the first value.
func ParseAllowTrailing() ParseOption {
	return func(o *parseOpts) { o.allowTrailing = true }
}

// ParseEnd stores the offset just past the parsed value in *end.
func ParseEnd(end *int) ParseOption {
	return func(o *parseOpts) { o.end = end }
}

// ParseMaxDepth limits the nesting of arrays and objects to n levels.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
