// Package docfile reads and writes whole documents as flat files.
package docfile

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

const Perm = 0o644

// Write replaces the file at path with data.  The file is written to a
// temporary file and renamed into place, so readers see either the old or
// the new contents.  An existing file keeps its permissions; a new one gets
// Perm less the umask.
func Write(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, Perm, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Read returns the contents of the file at path.  The length is found by
// seeking to the end before reading.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	n, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("sizing %s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", path, err)
	}
	d := make([]byte, n)
	if _, err := io.ReadFull(f, d); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if debug.Load() {
		debug.Logf("read %d bytes from %s\n", n, path)
	}
	return d, nil
}

// Load reads and parses the file at path.  Unless opts select a format, it
// is taken from the file name.
func Load(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := Read(path)
	if err != nil {
		return nil, err
	}
	opts = append([]parse.ParseOption{parse.ParseFormat(format.FromPath(path))}, opts...)
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Save prints node and writes it to path followed by a newline.  Unless
// opts select a format, it is taken from the file name.
func Save(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	opts = append([]encode.EncodeOption{encode.EncodeFormat(format.FromPath(path))}, opts...)
	s, err := encode.Print(node, opts...)
	if err != nil {
		return err
	}
	if !encode.FormatFromOpts(opts...).IsYAML() {
		s += "\n"
	}
	return Write(path, []byte(s))
}
