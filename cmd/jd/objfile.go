package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	theLog.Debug("read", "path", path, "len", len(d))
	return parse.Parse(d, opts...)
}

// eachDoc calls f with each document named by files, or stdin when there
// are none.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(name string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func (cfg *MainConfig) output(w io.Writer, node *ir.Node, i int) error {
	if i > 0 && cfg.format(cfg.OutFormat).IsYAML() {
		if _, err := w.Write([]byte("---\n")); err != nil {
			return err
		}
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
