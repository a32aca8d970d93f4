package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	V       bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format(override *format.Format) format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.format(cfg.InFormat)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format(cfg.OutFormat)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='only list elements for which the expression holds'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='print a merge patch instead of a change list'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge  bool `cli:"name=merge desc='patch is a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Expand bool `cli:"name=x desc='expand $[expr] and .[expr] strings of the documents'"`

	Eval *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Dir string `cli:"name=dir desc='directory in which to write new.json'"`

	Demo *cli.Command
}
