package main

import (
	"github.com/signadot/jdoc/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	i := 0
	return eachDoc(cfg.MainConfig, cc, args, func(_ string, doc *ir.Node) error {
		defer func() { i++ }()
		return cfg.output(cc.Out, doc, i)
	})
}
