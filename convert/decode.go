package convert

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/uxf-format/go-uxf/ir"
	"github.com/uxf-format/go-uxf/token"
)

// decoder builds values from the trees produced by the JSON and YAML
// readers.
type decoder struct {
	nat *token.Naturalizer
}

func asObject(x any) (object, bool) {
	switch x := x.(type) {
	case object:
		return x, true
	case yaml.MapSlice:
		res := make(object, len(x))
		for i, item := range x {
			res[i] = member{Key: item.Key, Value: item.Value}
		}
		return res, true
	}
	return nil, false
}

func (d *decoder) value(x any, p ir.Path) (ir.Value, error) {
	if o, ok := asObject(x); ok {
		return d.object(o, p)
	}
	switch x := x.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case json.Number:
		return d.number(string(x), p)
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromReal(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromReal(x), nil
	case float32:
		return ir.FromReal(float64(x)), nil
	case string:
		return ir.FromStr(x), nil
	case time.Time:
		return ir.FromZonedDateTime(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case []any:
		l := ir.NewList()
		for i, e := range x {
			v, err := d.value(e, p.Append(ir.IndexSegment(i)))
			if err != nil {
				return ir.Value{}, err
			}
			l.Push(v)
		}
		return ir.FromList(l), nil
	}
	return ir.Value{}, decodeErrf(p, "%w: %T", ErrUnsupported, x)
}

func (d *decoder) number(s string, p ir.Path) (ir.Value, error) {
	v := d.nat.Naturalize(s)
	switch v.Kind() {
	case ir.IntKind, ir.RealKind:
		return v, nil
	}
	return ir.Value{}, decodeErrf(p, "%w: %s", ErrBadNumber, s)
}

func (d *decoder) object(o object, p ir.Path) (ir.Value, error) {
	if len(o) == 1 {
		if k, ok := o[0].Key.(string); ok && strings.HasPrefix(k, markerPrefix) {
			return d.marker(k, o[0].Value, p)
		}
	}
	m := ir.NewMap()
	for _, mem := range o {
		key, err := d.key(mem.Key, p)
		if err != nil {
			return ir.Value{}, err
		}
		kp := p.Append(ir.KeySegment(key))
		v, err := d.value(mem.Value, kp)
		if err != nil {
			return ir.Value{}, err
		}
		if err := m.Insert(key, v); err != nil {
			return ir.Value{}, decodeErr(kp, err)
		}
	}
	return ir.FromMap(m), nil
}

func (d *decoder) key(x any, p ir.Path) (ir.Value, error) {
	k, err := d.value(x, p)
	if err != nil {
		return ir.Value{}, err
	}
	if !k.IsKey() {
		return ir.Value{}, decodeErrf(p, "%w: %s", ir.ErrInvalidKeyKind, k.TypeName())
	}
	return k, nil
}

func (d *decoder) marker(name string, body any, p ir.Path) (ir.Value, error) {
	switch name {
	case BytesMarker:
		s, ok := body.(string)
		if !ok {
			return ir.Value{}, decodeErrf(p, "%w: %s wants a hex string", ErrBadMarker, name)
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return ir.Value{}, decodeErrf(p, "%w: %s: %w", ErrBadMarker, name, err)
		}
		return ir.FromBytes(b), nil
	case DateMarker:
		return d.timeMarker(name, body, ir.DateKind, p)
	case DateTimeMarker:
		return d.timeMarker(name, body, ir.DateTimeKind, p)
	case ListMarker:
		return d.list(body, p)
	case MapMarker:
		return d.mapping(body, p)
	case TableMarker:
		return d.table(body, p)
	}
	return ir.Value{}, decodeErrf(p, "%w: unknown marker %q", ErrBadMarker, name)
}

func (d *decoder) timeMarker(name string, body any, k ir.Kind, p ir.Path) (ir.Value, error) {
	s, ok := body.(string)
	if ok {
		if v := d.nat.Naturalize(s); v.Kind() == k {
			return v, nil
		}
	}
	return ir.Value{}, decodeErrf(p, "%w: %s: %v is not a %s", ErrBadMarker, name, body, k)
}

// fields reads the members of a marker body, checking that each is
// expected and of the right type.
type fields struct {
	strs  map[string]*string
	lists map[string]*[]any
}

func (f fields) read(name string, body any, p ir.Path) error {
	o, ok := asObject(body)
	if !ok {
		return decodeErrf(p, "%w: %s wants an object", ErrBadMarker, name)
	}
	for _, mem := range o {
		k, _ := mem.Key.(string)
		if s, ok := f.strs[k]; ok {
			if *s, ok = mem.Value.(string); !ok {
				return decodeErrf(p, "%w: %s %s wants a string", ErrBadMarker, name, k)
			}
			continue
		}
		if l, ok := f.lists[k]; ok {
			if *l, ok = mem.Value.([]any); !ok && mem.Value != nil {
				return decodeErrf(p, "%w: %s %s wants a list", ErrBadMarker, name, k)
			}
			continue
		}
		return decodeErrf(p, "%w: %s has unexpected %v", ErrBadMarker, name, mem.Key)
	}
	return nil
}

func (d *decoder) list(body any, p ir.Path) (ir.Value, error) {
	l := ir.NewList()
	var items []any
	f := fields{
		strs:  map[string]*string{"comment": &l.Comment, "vtype": &l.VType},
		lists: map[string]*[]any{"list": &items},
	}
	if err := f.read(ListMarker, body, p); err != nil {
		return ir.Value{}, err
	}
	if err := ir.CheckVTypeName(l.VType); err != nil {
		return ir.Value{}, decodeErr(p, err)
	}
	for i, x := range items {
		ip := p.Append(ir.IndexSegment(i))
		v, err := d.value(x, ip)
		if err != nil {
			return ir.Value{}, err
		}
		if err := l.PushChecked(v); err != nil {
			return ir.Value{}, decodeErr(ip, err)
		}
	}
	return ir.FromList(l), nil
}

func (d *decoder) mapping(body any, p ir.Path) (ir.Value, error) {
	m := ir.NewMap()
	var entries []any
	f := fields{
		strs:  map[string]*string{"comment": &m.Comment, "ktype": &m.KType, "vtype": &m.VType},
		lists: map[string]*[]any{"entries": &entries},
	}
	if err := f.read(MapMarker, body, p); err != nil {
		return ir.Value{}, err
	}
	if m.KType != "" {
		if k, err := ir.ParseKind(m.KType); err != nil || !k.IsKey() {
			return ir.Value{}, decodeErrf(p, "%w: ktype %q", ErrBadMarker, m.KType)
		}
	}
	if err := ir.CheckVTypeName(m.VType); err != nil {
		return ir.Value{}, decodeErr(p, err)
	}
	for _, e := range entries {
		pair, ok := e.([]any)
		if !ok || len(pair) != 2 {
			return ir.Value{}, decodeErrf(p, "%w: map entries are [key, value] pairs", ErrBadMarker)
		}
		key, err := d.key(pair[0], p)
		if err != nil {
			return ir.Value{}, err
		}
		kp := p.Append(ir.KeySegment(key))
		v, err := d.value(pair[1], kp)
		if err != nil {
			return ir.Value{}, err
		}
		if err := m.Insert(key, v); err != nil {
			return ir.Value{}, decodeErr(kp, err)
		}
	}
	return ir.FromMap(m), nil
}

func (d *decoder) table(body any, p ir.Path) (ir.Value, error) {
	t := ir.NewTable()
	var name string
	var fieldList, records []any
	f := fields{
		strs:  map[string]*string{"comment": &t.Comment, "name": &name},
		lists: map[string]*[]any{"fields": &fieldList, "records": &records},
	}
	if err := f.read(TableMarker, body, p); err != nil {
		return ir.Value{}, err
	}
	schema := make([]ir.Field, 0, len(fieldList))
	for _, x := range fieldList {
		var fd ir.Field
		ff := fields{strs: map[string]*string{"name": &fd.Name, "vtype": &fd.VType}}
		if err := ff.read(TableMarker+" field", x, p); err != nil {
			return ir.Value{}, err
		}
		schema = append(schema, fd)
	}
	switch {
	case len(schema) != 0:
		if err := t.SetSchemaFields(name, schema...); err != nil {
			return ir.Value{}, decodeErr(p, err)
		}
	case name != "" || len(records) != 0:
		return ir.Value{}, decodeErrf(p, "%w: table %q has no fields", ErrBadMarker, name)
	}
	names := t.FieldNames()
	for r, x := range records {
		rp := p.Append(ir.IndexSegment(r))
		row, ok := x.([]any)
		if !ok {
			return ir.Value{}, decodeErrf(rp, "%w: table records are lists", ErrBadMarker)
		}
		if len(row) > len(names) {
			return ir.Value{}, decodeErr(rp, fmt.Errorf("%w: %d values for %d fields",
				ir.ErrRecordTooLong, len(row), len(names)))
		}
		vals := make([]ir.Value, len(row))
		for i, y := range row {
			v, err := d.value(y, rp.Append(ir.FieldSegment(names[i])))
			if err != nil {
				return ir.Value{}, err
			}
			vals[i] = v
		}
		if err := t.PushRecord(vals...); err != nil {
			return ir.Value{}, decodeErr(rp, err)
		}
	}
	return ir.FromTable(t), nil
}
