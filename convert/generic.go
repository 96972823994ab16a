package convert

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/uxf-format/go-uxf/encode"
	"github.com/uxf-format/go-uxf/ir"
)

// Single-key objects with these keys carry values which plain JSON and
// YAML cannot express.
const (
	markerPrefix   = "UXF^"
	BytesMarker    = markerPrefix + "bytes"
	DateMarker     = markerPrefix + "date"
	DateTimeMarker = markerPrefix + "datetime"
	ListMarker     = markerPrefix + "list"
	MapMarker      = markerPrefix + "map"
	TableMarker    = markerPrefix + "table"
)

type member struct {
	Key   any
	Value any
}

// object is an ordered JSON object or YAML mapping.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, m := range o {
		k, ok := m.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v", ErrUnsupported, m.Key)
		}
		if i != 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vd, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o object) add(key string, v any) object {
	return append(o, member{Key: key, Value: v})
}

// addStr adds key unless s is empty.
func (o object) addStr(key, s string) object {
	if s == "" {
		return o
	}
	return o.add(key, s)
}

func marker(name string, body any) object {
	return object{{Key: name, Value: body}}
}

// encoder turns values into trees of nil, bool, int64, json.Number,
// float64, string, []any and object.
type encoder struct {
	sorted bool
	// nonFinite allows NaN and infinities as float64.
	nonFinite bool
}

func (e *encoder) generic(v ir.Value, p ir.Path) (any, error) {
	switch v.Kind() {
	case ir.NullKind:
		return nil, nil
	case ir.BoolKind:
		b, _ := v.Bool()
		return b, nil
	case ir.IntKind:
		i, _ := v.Int()
		return i, nil
	case ir.RealKind:
		f, _ := v.Real()
		if e.nonFinite && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return f, nil
		}
		s, err := encode.Scalar(v)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrUnsupported, p, err)
		}
		return json.Number(s), nil
	case ir.StrKind:
		s, _ := v.Str()
		return s, nil
	case ir.BytesKind:
		d, _ := v.Bytes()
		return marker(BytesMarker, strings.ToUpper(hex.EncodeToString(d))), nil
	case ir.DateKind, ir.DateTimeKind:
		s, err := encode.Scalar(v)
		if err != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrUnsupported, p, err)
		}
		if v.Kind() == ir.DateKind {
			return marker(DateMarker, s), nil
		}
		return marker(DateTimeMarker, s), nil
	case ir.ListKind:
		return e.list(v.List(), p)
	case ir.MapKind:
		return e.mapping(v.Map(), p)
	case ir.TableKind:
		return e.table(v.Table(), p)
	}
	return nil, fmt.Errorf("%w at %s: %s", ErrUnsupported, p, v)
}

func (e *encoder) values(vs []ir.Value, p ir.Path) ([]any, error) {
	res := make([]any, len(vs))
	for i, v := range vs {
		x, err := e.generic(v, p.Append(ir.IndexSegment(i)))
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

func (e *encoder) list(l *ir.List, p ir.Path) (any, error) {
	vs, err := e.values(l.Values(), p)
	if err != nil {
		return nil, err
	}
	if l.VType == "" && l.Comment == "" {
		return vs, nil
	}
	body := object{}.addStr("comment", l.Comment).addStr("vtype", l.VType).add("list", vs)
	return marker(ListMarker, body), nil
}

func (e *encoder) mapping(m *ir.Map, p ir.Path) (any, error) {
	keys := m.Keys()
	if e.sorted {
		keys = m.SortedKeys()
	}
	plain := m.KType == "" && m.VType == "" && m.Comment == ""
	for _, k := range keys {
		if k.Kind() != ir.StrKind {
			plain = false
			break
		}
	}
	if plain && len(keys) == 1 {
		// a lone key could be mistaken for a marker
		s, _ := keys[0].Str()
		plain = !strings.HasPrefix(s, markerPrefix)
	}
	if plain {
		res := make(object, 0, len(keys))
		for _, k := range keys {
			s, _ := k.Str()
			v, _ := m.Get(k)
			x, err := e.generic(v, p.Append(ir.KeySegment(k)))
			if err != nil {
				return nil, err
			}
			res = res.add(s, x)
		}
		return res, nil
	}
	entries := make([]any, 0, len(keys))
	for _, k := range keys {
		kp := p.Append(ir.KeySegment(k))
		kx, err := e.generic(k, kp)
		if err != nil {
			return nil, err
		}
		v, _ := m.Get(k)
		vx, err := e.generic(v, kp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, []any{kx, vx})
	}
	body := object{}.
		addStr("comment", m.Comment).
		addStr("ktype", m.KType).
		addStr("vtype", m.VType).
		add("entries", entries)
	return marker(MapMarker, body), nil
}

func (e *encoder) table(t *ir.Table, p ir.Path) (any, error) {
	fields := make([]any, 0, t.FieldCount())
	for _, f := range t.Fields() {
		fields = append(fields, object{}.add("name", f.Name).addStr("vtype", f.VType))
	}
	names := t.FieldNames()
	records := make([]any, 0, t.Len())
	for r, rec := range t.Records() {
		rp := p.Append(ir.IndexSegment(r))
		row := make([]any, len(rec))
		for i, v := range rec {
			x, err := e.generic(v, rp.Append(ir.FieldSegment(names[i])))
			if err != nil {
				return nil, err
			}
			row[i] = x
		}
		records = append(records, row)
	}
	body := object{}.
		addStr("comment", t.Comment).
		add("name", t.Name()).
		add("fields", fields).
		add("records", records)
	return marker(TableMarker, body), nil
}
