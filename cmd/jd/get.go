package main

import (
	"fmt"

	"github.com/signadot/jdoc/eval"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/ir/kpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a kpath", cli.ErrUsage)
	}
	kp, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	i := 0
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := doc.GetPath(kp)
		if err != nil {
			return err
		}
		defer func() { i++ }()
		return cfg.output(cc.Out, res, i)
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a kpath", cli.ErrUsage)
	}
	kp, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	i := 0
	return eachDoc(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Node) error {
		res, err := listDoc(doc, kp, cfg.Where)
		if err != nil {
			return err
		}
		defer func() { i++ }()
		return cfg.output(cc.Out, res, i)
	})
}

// listDoc returns an array of the nodes matched by a wildcard path, or of
// the children of the node at a plain path.  When where is not empty, only
// the nodes for which it holds are kept.
func listDoc(doc *ir.Node, kp *kpath.KPath, where string) (*ir.Node, error) {
	var elts []*ir.Node
	if kp.Wild() {
		elts = doc.ListPath(nil, kp)
	} else {
		res, err := doc.GetPath(kp)
		if err != nil {
			return nil, err
		}
		elts = res.Values
	}
	out := make([]*ir.Node, 0, len(elts))
	for _, elt := range elts {
		if where != "" {
			ok, err := eval.Match(elt, where)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", elt.KPath(), err)
			}
			if !ok {
				continue
			}
		}
		out = append(out, elt.Clone())
	}
	return ir.FromSlice(out), nil
}
