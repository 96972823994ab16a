package libdiff

import (
	"slices"
	"unicode/utf8"

	"github.com/uxf-format/go-uxf/debug"
	"github.com/uxf-format/go-uxf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, in document order.
// Equal values have no changes; comments and type annotations are not
// compared.
//
// Lists and table records are aligned so that an insertion in the middle
// of a list is reported as one Insert. Paths of inserted elements index
// the to list; all other paths index the from list. Maps are compared
// key by key, and tables with a different name or field list are
// replaced as a whole.
func Diff(from, to ir.Value) []Change {
	d := &differ{}
	d.diff(nil, from, to)
	if debug.Diff() {
		for _, c := range d.changes {
			debug.Logger().Debug("diff", "op", c.Op, "path", c.Path.String())
		}
	}
	return d.changes
}

type differ struct {
	changes []Change
}

func (d *differ) add(p ir.Path, op Op, from, to ir.Value) {
	d.changes = append(d.changes, Change{Path: p, Op: op, From: from, To: to})
}

func (d *differ) diff(p ir.Path, from, to ir.Value) {
	if ir.Equal(from, to) {
		return
	}
	if from.Kind() != to.Kind() {
		d.add(p, Replace, from, to)
		return
	}
	switch from.Kind() {
	case ir.ListKind:
		d.list(p, from.List().Values(), to.List().Values())
	case ir.MapKind:
		d.mapping(p, from.Map(), to.Map())
	case ir.TableKind:
		d.table(p, from.Table(), to.Table())
	default:
		d.add(p, Replace, from, to)
	}
}

func (d *differ) list(p ir.Path, from, to []ir.Value) {
	align(from, to,
		func(fi, ti int) { d.diff(p.Append(ir.IndexSegment(fi)), from[fi], to[ti]) },
		func(fi int) { d.add(p.Append(ir.IndexSegment(fi)), Delete, from[fi], ir.Null()) },
		func(ti int) { d.add(p.Append(ir.IndexSegment(ti)), Insert, ir.Null(), to[ti]) },
	)
}

func (d *differ) mapping(p ir.Path, from, to *ir.Map) {
	for k, fv := range from.All() {
		kp := p.Append(ir.KeySegment(k))
		tv, ok := to.Get(k)
		if !ok {
			d.add(kp, Delete, fv, ir.Null())
			continue
		}
		d.diff(kp, fv, tv)
	}
	for k, tv := range to.All() {
		if !from.Has(k) {
			d.add(p.Append(ir.KeySegment(k)), Insert, ir.Null(), tv)
		}
	}
}

func (d *differ) table(p ir.Path, from, to *ir.Table) {
	if from.Name() != to.Name() || !slices.Equal(from.FieldNames(), to.FieldNames()) {
		d.add(p, Replace, ir.FromTable(from), ir.FromTable(to))
		return
	}
	names := from.FieldNames()
	fromRecs, toRecs := records(from), records(to)
	align(fromRecs, toRecs,
		func(fi, ti int) {
			a, b := fromRecs[fi].List().Values(), toRecs[ti].List().Values()
			rp := p.Append(ir.IndexSegment(fi))
			for i := range names {
				d.diff(rp.Append(ir.FieldSegment(names[i])), a[i], b[i])
			}
		},
		func(fi int) { d.add(p.Append(ir.IndexSegment(fi)), Delete, fromRecs[fi], ir.Null()) },
		func(ti int) { d.add(p.Append(ir.IndexSegment(ti)), Insert, ir.Null(), toRecs[ti]) },
	)
}

// records returns the padded records of t as lists.
func records(t *ir.Table) []ir.Value {
	res := make([]ir.Value, 0, t.Len())
	for _, rec := range t.Records() {
		res = append(res, ir.FromList(ir.NewList(rec...)))
	}
	return res
}

// align matches up the elements of from and to with a diff over one rune
// per element, equal elements sharing a rune. Matched elements, and
// deleted elements directly followed by inserted ones, are passed to
// pair; the rest to del or ins.
func align(from, to []ir.Value, pair func(fi, ti int), del func(fi int), ins func(ti int)) {
	rs := &runeMap{}
	fromRunes := rs.runes(from)
	toRunes := rs.runes(to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	pendingDel := 0
	flush := func() {
		for ; pendingDel > 0; pendingDel-- {
			del(fi)
			fi++
		}
	}
	for i := range diffs {
		n := utf8.RuneCountInString(diffs[i].Text)
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			pendingDel += n
		case diffpatch.DiffInsert:
			for range n {
				if pendingDel > 0 {
					pair(fi, ti)
					pendingDel--
					fi++
				} else {
					ins(ti)
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				pair(fi, ti)
				fi++
				ti++
			}
		}
	}
	flush()
}

// runeMap assigns runes to values so that equal values get the same rune.
type runeMap struct {
	byHash map[uint64][]entry
	next   rune
}

type entry struct {
	v ir.Value
	r rune
}

func (m *runeMap) runes(vs []ir.Value) []rune {
	if m.byHash == nil {
		m.byHash = map[uint64][]entry{}
	}
	res := make([]rune, len(vs))
	for i, v := range vs {
		res[i] = m.rune(v)
	}
	return res
}

func (m *runeMap) rune(v ir.Value) rune {
	h := v.Hash()
	for _, e := range m.byHash[h] {
		if ir.Equal(e.v, v) {
			return e.r
		}
	}
	r := m.next
	m.next++
	if m.next == 0xD800 {
		// skip surrogates, they do not survive conversion to string
		m.next = 0xE000
	}
	m.byHash[h] = append(m.byHash[h], entry{v: v, r: r})
	return r
}
