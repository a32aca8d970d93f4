package encode

import "github.com/signadot/jdoc/format"

type EncodeOption func(*EncState)

// NonFinitePolicy says how NaN and infinite numbers are written.
type NonFinitePolicy int

const (
	// NonFiniteNull writes null.
	NonFiniteNull NonFinitePolicy = iota
	// NonFiniteError fails with ErrNonFinite.
	NonFiniteError
)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per nesting level of pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects compact output without insignificant whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
func NonFinite(p NonFinitePolicy) EncodeOption {
	return func(es *EncState) { es.nonFinite = p }
}
