package main

import (
	"fmt"

	"github.com/signadot/jdoc/eval"
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	src := ""
	if !cfg.Expand {
		if len(args) == 0 {
			return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
		}
		src, args = args[0], args[1:]
	}
	i := 0
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, doc *ir.Node) error {
		res, err := evalDoc(doc, src)
		if err != nil {
			return err
		}
		defer func() { i++ }()
		return cfg.output(cc.Out, res, i)
	})
}

// evalDoc evaluates src over doc, or expands doc when src is empty.
func evalDoc(doc *ir.Node, src string) (*ir.Node, error) {
	if src != "" {
		return eval.Eval(doc, src)
	}
	if err := eval.Expand(doc, eval.NewEnv(doc)); err != nil {
		return nil, err
	}
	return doc, nil
}
