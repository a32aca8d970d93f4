package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/signadot/jdoc/docfile"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	"github.com/scott-cotton/cli"
)

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	return runDemo(cc.Out, cfg.Dir, encode.EncodeWire(cfg.WireOut))
}

type sample struct {
	name string
	node *ir.Node
}

func runDemo(w io.Writer, dir string, opts ...encode.EncodeOption) error {
	samples, err := demoDocs()
	if err != nil {
		return err
	}
	for _, s := range samples {
		theLog.Debug("printing", "sample", s.name)
		if err := printPreallocated(w, s.node, opts...); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	tom, err := buildTom()
	if err != nil {
		return err
	}
	if err := printPreallocated(w, tom, opts...); err != nil {
		return fmt.Errorf("tom: %w", err)
	}
	path := filepath.Join(dir, "new.json")
	if err := docfile.Save(path, tom, opts...); err != nil {
		return err
	}
	return decodeTom(w, path)
}

// printPreallocated prints node into a buffer of exactly the printed size,
// which must succeed with the same text as Print, and into one a byte
// shorter, which must fail.
func printPreallocated(w io.Writer, node *ir.Node, opts ...encode.EncodeOption) error {
	out, err := encode.Print(node, opts...)
	if err != nil {
		return err
	}
	buf := make([]byte, len(out))
	n, err := encode.PrintInto(node, buf, opts...)
	if err != nil {
		return fmt.Errorf("PrintInto failed: %w", err)
	}
	if string(buf[:n]) != out {
		return fmt.Errorf("PrintInto not the same as Print:\n%s\n%s", out, buf[:n])
	}
	fmt.Fprintf(w, "%s\n", buf[:n])

	if len(out) == 0 {
		return nil
	}
	_, err = encode.PrintInto(node, buf[:len(out)-1], opts...)
	if !errors.Is(err, encode.ErrCapacity) {
		return fmt.Errorf("PrintInto failed to show error with insufficient memory: %v", err)
	}
	return nil
}

type record struct {
	Precision string  `json:"precision"`
	Lat       float64 `json:"Latitude"`
	Lon       float64 `json:"Longitude"`
	Address   string  `json:"Address"`
	City      string  `json:"City"`
	State     string  `json:"State"`
	Zip       string  `json:"Zip"`
	Country   string  `json:"Country"`
}

func demoDocs() ([]sample, error) {
	var res []sample

	video := ir.NewObject()
	if err := video.Set("name", ir.FromString(`Jack ("Bee") Nimble`)); err != nil {
		return nil, err
	}
	fmat, err := video.AddObject("format")
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		added(fmat.AddString("type", "rect")),
		added(fmat.AddNumber("width", 1920)),
		added(fmat.AddNumber("height", 1080)),
		added(fmat.AddBool("interlace", false)),
		added(fmat.AddNumber("frame rate", 24)),
	); err != nil {
		return nil, err
	}
	res = append(res, sample{"video", video})

	days := ir.FromStrings([]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	})
	res = append(res, sample{"days", days})

	matrix := ir.NewArray()
	for _, row := range [][]int64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}} {
		if err := matrix.Append(ir.FromInts(row)); err != nil {
			return nil, err
		}
	}
	res = append(res, sample{"matrix", matrix})

	gallery := ir.NewObject()
	img, err := gallery.AddObject("Image")
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		added(img.AddNumber("Width", 800)),
		added(img.AddNumber("Height", 600)),
		added(img.AddString("Tittle", "View from 15th Floor")),
	); err != nil {
		return nil, err
	}
	thm, err := img.AddObject("Thumbnail")
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		added(thm.AddString("Url", "http:/*www.example.com/image/481948843")),
		added(thm.AddNumber("Height", 125)),
		added(thm.AddNumber("Width", 100)),
	); err != nil {
		return nil, err
	}
	if err := img.Set("IDs", ir.FromInts([]int64{116, 943, 234, 38793})); err != nil {
		return nil, err
	}
	res = append(res, sample{"gallery", gallery})

	records, err := gomap.FromGo([]record{
		{"zip", 37.7668, -1.223959e+2, "", "SAN FRANCISCO", "CA", "94107", "US"},
		{"zip", 37.371991, -1.22026e+2, "", "SUNNYVALE", "CA", "94085", "US"},
	})
	if err != nil {
		return nil, err
	}
	res = append(res, sample{"records", records})

	zero := 0.0
	div := ir.NewObject()
	if _, err := div.AddNumber("Number", 1.0/zero); err != nil {
		return nil, err
	}
	res = append(res, sample{"division by zero", div})

	return res, nil
}

func buildTom() (*ir.Node, error) {
	root := ir.NewObject()
	if _, err := root.AddString("name", "Tom"); err != nil {
		return nil, err
	}
	if _, err := root.AddNumber("age", 24); err != nil {
		return nil, err
	}
	love, err := root.AddArray("love")
	if err != nil {
		return nil, err
	}
	sub := ir.NewObject()
	if err := errors.Join(
		love.Append(ir.FromString("basketball")),
		love.Append(ir.FromString("swim")),
		love.Append(sub),
	); err != nil {
		return nil, err
	}
	games, err := sub.AddArray("games")
	if err != nil {
		return nil, err
	}
	if err := errors.Join(
		games.Append(ir.FromString("LOL")),
		games.Append(ir.FromString("CF")),
	); err != nil {
		return nil, err
	}
	return root, nil
}

// added drops the new child returned by the Add methods of ir.Node.
func added(_ *ir.Node, err error) error {
	return err
}

func decodeTom(w io.Writer, path string) error {
	content, err := docfile.Read(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "file len = %d\n", len(content))
	doc, err := parse.Parse(content)
	if err != nil {
		return err
	}
	name, err := doc.Lookup("name")
	if err != nil {
		return err
	}
	nameStr, err := name.AsString()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "name = %s\n", nameStr)
	age, err := doc.Lookup("age")
	if err != nil {
		return err
	}
	ageInt, err := age.AsInt()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "age = %d\n", ageInt)

	love, err := doc.Lookup("love")
	if err != nil {
		return fmt.Errorf("not find love: %w", err)
	}
	fmt.Fprint(w, "love: [")
	for i := range love.Len() {
		node := love.Index(i)
		if node.Type == ir.StringType {
			fmt.Fprintf(w, "%s, ", node.String)
			continue
		}
		games, err := node.Lookup("games")
		if err != nil {
			return fmt.Errorf("not find games: %w", err)
		}
		fmt.Fprint(w, "{ games:[")
		for j := range games.Len() {
			g, err := games.Index(j).AsString()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s ", g)
		}
		fmt.Fprint(w, "] }")
	}
	fmt.Fprint(w, "]\n")
	return nil
}
