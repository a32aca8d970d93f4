package debug

import (
	"fmt"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

// Logf writes a formatted message to stderr.  *ir.Node arguments are
// rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			s, err := encode.Print(x, encode.EncodeWire(true))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s at %q", x.Type, x.KPath())
				continue
			}
			args[i] = s
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
