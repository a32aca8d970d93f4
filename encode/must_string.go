package encode

import (
	"github.com/signadot/jdoc/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := Print(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
