package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/token"
)

var ErrSyntax = errors.New("kpath syntax")

// KPath is one segment of a kinded path, linked to the following segment.
type KPath struct {
	Field    *string // Object field name
	FieldAll bool    // Object field wildcard .*
	Index    *int    // Array index
	IndexAll bool    // Array wildcard [*]
	Next     *KPath  // Next segment in path (nil for leaf)
}

func Field(f string) *KPath {
	return &KPath{Field: &f}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the kinded path string representation of this KPath.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.FieldAll, x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(x.SegmentString())
		default:
			buf.WriteString(x.SegmentString())
		}
	}
	return buf.String()
}

// SegmentString returns the canonical string representation of this single segment.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	switch {
	case p.FieldAll:
		return "*"
	case p.Field != nil:
		if token.KPathQuoteField(*p.Field) {
			return token.Quote(*p.Field)
		}
		return *p.Field
	case p.IndexAll:
		return "[*]"
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

// Wild reports whether any segment of p is a wildcard.
func (p *KPath) Wild() bool {
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return true
		}
	}
	return false
}

// Last returns the last segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Append returns a copy of p with seg (and its successors) appended.
func (p *KPath) Append(seg *KPath) *KPath {
	if p == nil {
		return seg
	}
	res := &KPath{}
	*res = *p
	res.Next = res.Next.Append(seg)
	return res
}

// Parse parses a kinded path string into a KPath structure.
//
// Examples:
//   - "a.b.c" → Object path with 3 segments
//   - "a[0][1]" → Array path with 3 segments
//   - "a[*].b" → Array wildcard then object
//   - "" → Root path (returns nil)
//
// A leading '$' or '.' is accepted and ignored.
func Parse(kpath string) (*KPath, error) {
	kpath = strings.TrimPrefix(kpath, "$")
	if kpath == "" || kpath == "." {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) *KPath {
	kp, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return kp
}

func parseKFrag(frag string, parent *KPath, first bool) error {
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) == 1 {
			if first {
				return nil
			}
			return fmt.Errorf("expected field after '.'")
		}
		if frag[1] == '*' {
			parent.FieldAll = true
			rest = frag[2:]
			break
		}
		field, r, err := parseKField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseKIndex(frag[1:i])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+1:]
	case '*':
		if !first {
			return fmt.Errorf("unexpected '*'")
		}
		parent.FieldAll = true
		rest = frag[1:]
	default:
		if !first {
			return fmt.Errorf("expected '.' or '[', got %q", frag[0])
		}
		field, r, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	}
	if len(rest) == 0 {
		return nil
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, false); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseKIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, fmt.Errorf("invalid array index %q: %w", is, err)
	}
	return int(u64), false, nil
}

// parseKField parses an object field name from a fragment.
// It stops at '.' or '['. Quoted fields use JSON string syntax.
func parseKField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] == '"' {
		v, n, err := token.Unquote([]byte(frag))
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		return v, frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}
