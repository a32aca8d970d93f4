package eval

import (
	"fmt"
	"os"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	"github.com/expr-lang/expr"
)

type Env map[string]any

// RootName is the name under which the whole document is visible.
const RootName = "root"

// NewEnv returns the environment for expressions over doc.
func NewEnv(doc *ir.Node) Env {
	env := Env{}
	if doc.Type == ir.ObjectType {
		for k, v := range ToAny(doc).(map[string]any) {
			env[k] = v
		}
	}
	env[RootName] = ToAny(doc)
	return env
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return doc.KPath(), nil
		},
			new(func() string)),
		expr.Function("kpath", func(params ...any) (any, error) {
			res, err := doc.Root().GetKPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("listkpath", func(params ...any) (any, error) {
			nodes, err := doc.Root().ListKPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for i, n := range nodes {
				res[i] = ToAny(n)
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Eval runs the expression src over doc and returns its result as a new
// node.
func Eval(doc *ir.Node, src string) (*ir.Node, error) {
	v, err := run(doc, src, NewEnv(doc))
	if err != nil {
		return nil, err
	}
	return FromAny(v)
}

// Match reports whether src evaluates to a truthy value over doc.
func Match(doc *ir.Node, src string) (bool, error) {
	res, err := Eval(doc, src)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}

func run(doc *ir.Node, src string, env Env) (any, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}
