package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal.  Hashes are
// stable within a process only.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))

	var b [8]byte
	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		f := n.Float64
		switch {
		case f == 0:
			f = 0
		case math.IsNaN(f):
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for _, v := range n.Values {
			h.WriteString(v.ParentField)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
