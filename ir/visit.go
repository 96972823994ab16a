package ir

// Visitor receives a value according to its capability. Implementations
// that need to descend into collections call Accept on the children.
type Visitor interface {
	VisitScalar(v Value) error
	VisitList(l *List) error
	VisitMap(m *Map) error
	VisitTable(t *Table) error
}

// Accept dispatches v to the Visitor method for its capability.
func (v Value) Accept(vis Visitor) error {
	switch v.kind {
	case ListKind:
		return vis.VisitList(v.list)
	case MapKind:
		return vis.VisitMap(v.m)
	case TableKind:
		return vis.VisitTable(v.table)
	default:
		return vis.VisitScalar(v)
	}
}

// Walk calls f before (isPost false) and after (isPost true) visiting the
// children of each value, depth first. Children are visited only if the
// pre call returns true. Map keys are not visited; they appear in the path.
// Table records are visited field by field with padding applied.
func (v Value) Walk(f func(p Path, v Value, isPost bool) (bool, error)) error {
	return v.walk(nil, f)
}

func (v Value) walk(p Path, f func(p Path, v Value, isPost bool) (bool, error)) error {
	dive, err := f(p, v, false)
	if err != nil {
		return err
	}
	if dive {
		switch v.kind {
		case ListKind:
			for i, x := range v.list.values {
				if err := x.walk(p.Append(IndexSegment(i)), f); err != nil {
					return err
				}
			}
		case MapKind:
			for i, k := range v.m.keys {
				if err := v.m.values[i].walk(p.Append(KeySegment(k)), f); err != nil {
					return err
				}
			}
		case TableKind:
			t := v.table
			for r, rec := range t.Records() {
				rp := p.Append(IndexSegment(r))
				for i, x := range rec {
					if err := x.walk(rp.Append(FieldSegment(t.fields[i].Name)), f); err != nil {
						return err
					}
				}
			}
		}
	}
	if _, err := f(p, v, true); err != nil {
		return err
	}
	return nil
}
