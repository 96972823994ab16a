package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v which is consistent with Equal within
// one process: Equal values hash alike, whatever their map insertion
// order, comments or type annotations.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	putU64 := func(x uint64) {
		binary.LittleEndian.PutUint64(b[:], x)
		h.Write(b[:])
	}

	h.WriteByte(byte(v.kind))
	switch v.kind {
	case NullKind:
	case BoolKind:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntKind:
		putU64(uint64(v.i))
	case RealKind:
		f := v.r
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0
		}
		putU64(math.Float64bits(f))
	case StrKind, BytesKind:
		h.WriteString(v.s)
	case DateKind, DateTimeKind:
		putU64(uint64(v.t.Unix()))
		putU64(uint64(v.t.Nanosecond()))
		if v.zoned {
			h.WriteByte(1)
		}
	case ListKind:
		for _, x := range v.list.values {
			putU64(x.Hash())
		}
	case MapKind:
		// entries combine by addition so that order does not matter
		var sum uint64
		for k, x := range v.m.All() {
			var eh maphash.Hash
			eh.SetSeed(hashSeed)
			binary.LittleEndian.PutUint64(b[:], k.Hash())
			eh.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], x.Hash())
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		putU64(uint64(v.m.Len()))
		putU64(sum)
	case TableKind:
		t := v.table
		h.WriteString(t.name)
		for _, f := range t.fields {
			h.WriteByte(0)
			h.WriteString(f.Name)
		}
		for _, rec := range t.Records() {
			for _, x := range rec {
				putU64(x.Hash())
			}
		}
	}
	return h.Sum64()
}
