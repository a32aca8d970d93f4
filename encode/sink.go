package encode

import (
	"bufio"
	"io"
	"strings"
)

// sink receives the output of the tree walk.
type sink interface {
	write(p []byte) error
	writeString(s string) error
}

// counter measures output without storing it.
type counter struct {
	n int
}

func (c *counter) write(p []byte) error {
	c.n += len(p)
	return nil
}

func (c *counter) writeString(s string) error {
	c.n += len(s)
	return nil
}

// bounded writes into caller memory and fails on the first write which
// does not fit, writing nothing of it.
type bounded struct {
	buf []byte
	n   int
}

func (b *bounded) write(p []byte) error {
	if len(p) > len(b.buf)-b.n {
		return ErrCapacity
	}
	b.n += copy(b.buf[b.n:], p)
	return nil
}

func (b *bounded) writeString(s string) error {
	if len(s) > len(b.buf)-b.n {
		return ErrCapacity
	}
	b.n += copy(b.buf[b.n:], s)
	return nil
}

// builder grows a strings.Builder sized in advance.
type builder struct {
	strings.Builder
}

func (b *builder) write(p []byte) error {
	_, err := b.Write(p)
	return err
}

func (b *builder) writeString(s string) error {
	_, err := b.WriteString(s)
	return err
}

type writer struct {
	w *bufio.Writer
}

func newWriter(w io.Writer) *writer {
	return &writer{w: bufio.NewWriter(w)}
}

func (w *writer) write(p []byte) error {
	_, err := w.w.Write(p)
	return err
}

func (w *writer) writeString(s string) error {
	_, err := w.w.WriteString(s)
	return err
}

func (w *writer) flush() error {
	return w.w.Flush()
}
