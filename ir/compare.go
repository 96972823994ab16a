package ir

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different kinds order by kind rank:
// Null < Bool < Int < Real < Str < Bytes < Date < DateTime < List < Map < Table.
// Compare(a, b) == 0 exactly when Equal(a, b).
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case IntKind:
		return cmp.Compare(a.i, b.i)
	case RealKind:
		// NaN sorts first and equals NaN; -0 equals 0
		return cmp.Compare(a.r, b.r)
	case StrKind, BytesKind:
		return strings.Compare(a.s, b.s)
	case DateKind:
		return a.t.Compare(b.t)
	case DateTimeKind:
		if c := a.t.Compare(b.t); c != 0 {
			return c
		}
		switch {
		case a.zoned == b.zoned:
			return 0
		case !a.zoned:
			return -1
		default:
			return 1
		}
	case ListKind:
		return compareLists(a.list, b.list)
	case MapKind:
		return compareMaps(a.m, b.m)
	case TableKind:
		return compareTables(a.table, b.table)
	}
	return 0
}

// CompareKeys orders two map keys. It fails with ErrInvalidKeyKind if
// either value is not of a key kind.
func CompareKeys(a, b Value) (int, error) {
	if !a.IsKey() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidKeyKind, a.TypeName())
	}
	if !b.IsKey() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidKeyKind, b.TypeName())
	}
	return Compare(a, b), nil
}

// Equal reports whether a and b have the same kind and equal payloads.
// Lists compare element-wise, maps key-wise independent of insertion order
// and tables by name, field names and padded records. Comments and type
// annotations are ignored; see Identical.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareValues(a, b []Value) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareLists(a, b *List) int {
	return compareValues(a.values, b.values)
}

func compareMaps(a, b *Map) int {
	if c := cmp.Compare(len(a.keys), len(b.keys)); c != 0 {
		return c
	}
	aKeys, bKeys := a.SortedKeys(), b.SortedKeys()
	for i := range aKeys {
		if c := Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		av, _ := a.Get(aKeys[i])
		bv, _ := b.Get(bKeys[i])
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

func compareTables(a, b *Table) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	if c := slices.CompareFunc(a.fields, b.fields, func(x, y Field) int {
		return strings.Compare(x.Name, y.Name)
	}); c != 0 {
		return c
	}
	for i := range min(len(a.records), len(b.records)) {
		if c := compareValues(a.padded(a.records[i]), b.padded(b.records[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.records), len(b.records))
}

// Identical is Equal that also compares comments and type annotations of
// collections, at every depth.
func Identical(a, b Value) bool {
	if !Equal(a, b) {
		return false
	}
	return identical(a, b)
}

func identical(a, b Value) bool {
	switch a.kind {
	case ListKind:
		if a.list.Comment != b.list.Comment || a.list.VType != b.list.VType {
			return false
		}
		for i, v := range a.list.values {
			if !identical(v, b.list.values[i]) {
				return false
			}
		}
	case MapKind:
		x, y := a.m, b.m
		if x.Comment != y.Comment || x.KType != y.KType || x.VType != y.VType {
			return false
		}
		for k, v := range x.All() {
			w, _ := y.Get(k)
			if !identical(v, w) {
				return false
			}
		}
	case TableKind:
		x, y := a.table, b.table
		if x.Comment != y.Comment || !slices.Equal(x.fields, y.fields) {
			return false
		}
		for i, rec := range x.records {
			other := y.padded(y.records[i])
			for j, v := range x.padded(rec) {
				if !identical(v, other[j]) {
					return false
				}
			}
		}
	}
	return true
}
