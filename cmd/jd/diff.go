package main

import (
	"fmt"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"
	"github.com/signadot/jdoc/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := diffDocs(y1, y2, cfg.Merge)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	if err := cfg.output(cc.Out, d, 0); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// diffDocs returns nil when from and to are equal and otherwise either a
// change list or a merge patch taking from to to.
func diffDocs(from, to *ir.Node, merge bool) (*ir.Node, error) {
	if ir.Equal(from, to) {
		return nil, nil
	}
	if merge {
		res, err := patch.CreateMerge(from, to)
		if err != nil {
			return nil, fmt.Errorf("error creating merge patch: %w", err)
		}
		return res, nil
	}
	changes := libdiff.Diff(from, to)
	theLog.Debug("diff", "changes", len(changes))
	return libdiff.ToNode(changes), nil
}
