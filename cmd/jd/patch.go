package main

import (
	"fmt"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
	"github.com/signadot/jdoc/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := patchDoc(target, p, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return cfg.output(cc.Out, res, 0)
}

func patchDoc(doc, p *ir.Node, merge bool) (*ir.Node, error) {
	if merge {
		return patch.Merge(doc, p)
	}
	return patch.Apply(doc, p)
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	var (
		res *ir.Node
		err error
	)
	if cfg.String {
		res, err = parse.ParseString(arg, cfg.parseOpts()...)
	} else {
		res, err = getObjFile(cc, arg, cfg.parseOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	return res, nil
}
