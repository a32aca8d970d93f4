package libdiff

import (
	"fmt"
	"unicode/utf8"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Change is one difference.  Path is the kinded path of From in the from
// document for Delete and Replace, and of To in the to document for Insert.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

// Diff returns the changes which turn from into to, in document order.  It
// returns nil when the documents are equal.
func Diff(from, to *ir.Node) []Change {
	res := diff(nil, from, to)
	if debug.Diff() {
		debug.Logf("diff: %d changes\n", len(res))
	}
	return res
}

func diff(dst []Change, from, to *ir.Node) []Change {
	if from.Type != to.Type {
		return append(dst, replace(from, to))
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(dst, from, to)
	case ir.ArrayType:
		return diffArray(dst, from, to)
	default:
		if ir.Equal(from, to) {
			return dst
		}
		return append(dst, replace(from, to))
	}
}

func replace(from, to *ir.Node) Change {
	return Change{Path: from.KPath(), Op: Replace, From: from, To: to}
}

func deleted(from *ir.Node) Change {
	return Change{Path: from.KPath(), Op: Delete, From: from}
}

func inserted(to *ir.Node) Change {
	return Change{Path: to.KPath(), Op: Insert, To: to}
}

// 1 diff field names
// for every different field name add a change
// for every same field name, recurse on the value
func diffObject(dst []Change, from, to *ir.Node) []Change {
	fieldMap := map[string]rune{}
	fromRunes, fromOK := mapFields(fieldMap, from)
	toRunes, toOK := mapFields(fieldMap, to)
	if !fromOK || !toOK {
		return append(dst, replace(from, to))
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for range []rune(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				dst = append(dst, deleted(from.Values[fi]))
				fi++
			case diffpatch.DiffEqual:
				dst = diff(dst, from.Values[fi], to.Values[ti])
				fi++
				ti++
			case diffpatch.DiffInsert:
				dst = append(dst, inserted(to.Values[ti]))
				ti++
			}
		}
	}
	return dst
}

// mapFields gives each distinct key a rune.  It reports false when there are
// more distinct keys than runes.
func mapFields(m map[string]rune, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		r, ok := m[v.ParentField]
		if !ok {
			if len(m) >= runeLimit {
				return nil, false
			}
			r = runeOf(len(m))
			m[v.ParentField] = r
		}
		rs[i] = r
	}
	return rs, true
}

type summary struct {
	t ir.Type
	h uint64
}

// arrays: elements are summarised by type, and leaves also by value, so
// that containers of the same type line up and are compared recursively.
// A delete run followed by an insert run pairs up as many elements as the
// two runs share.
func diffArray(dst []Change, from, to *ir.Node) []Change {
	m := map[summary]rune{}
	fromRunes, fromOK := mapValues(m, from)
	toRunes, toOK := mapValues(m, to)
	if !fromOK || !toOK {
		return append(dst, replace(from, to))
	}
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffEqual:
			for range n {
				dst = diff(dst, from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			paired := min(n, ins)
			for range paired {
				dst = diff(dst, from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
			for range n - paired {
				dst = append(dst, deleted(from.Values[fi]))
				fi++
			}
			for range ins - paired {
				dst = append(dst, inserted(to.Values[ti]))
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				dst = append(dst, inserted(to.Values[ti]))
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[summary]rune, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		s := summary{t: v.Type}
		if v.Type.IsLeaf() {
			s.h = v.Hash()
		}
		r, ok := m[s]
		if !ok {
			if len(m) >= runeLimit {
				return nil, false
			}
			r = runeOf(len(m))
			m[s] = r
		}
		rs[i] = r
	}
	return rs, true
}

// maxRunes is the number of valid runes outside the surrogate range.
const maxRunes = utf8.MaxRune + 1 - 0x800

// runeLimit bounds the distinct keys or summaries of one container; past
// it, the container is replaced as a whole.
var runeLimit int = maxRunes

// runeOf maps i, in [0, maxRunes), to a rune which survives conversion to
// diff text.
func runeOf(i int) rune {
	r := rune(i)
	if r >= 0xd800 {
		r += 0x800
	}
	return r
}

// ToNode renders changes as an array of objects with keys op and path,
// plus from and to when present.
func ToNode(changes []Change) *ir.Node {
	res := ir.NewArray()
	for _, c := range changes {
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(c.Op.String())},
			{Key: "path", Val: ir.FromString(c.Path)},
		}
		if c.From != nil {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From.Clone()})
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To.Clone()})
		}
		res.Append(ir.FromKeyVals(kvs))
	}
	return res
}
