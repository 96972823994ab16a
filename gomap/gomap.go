// Package gomap maps UXF values to and from Go values.
//
// Both directions go through encoding/json: Load builds a plain JSON form
// of a value and unmarshals it into the target, and ToValue marshals a Go
// value and decodes the result with convert.FromJSON. Struct fields are
// therefore named and tagged as for encoding/json.
package gomap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/uxf-format/go-uxf/convert"
	"github.com/uxf-format/go-uxf/encode"
	"github.com/uxf-format/go-uxf/ir"
)

// ErrKeyCollision is returned by Load when two keys of one map, such as
// the int 1 and the str "1", would load as the same Go key.
var ErrKeyCollision = errors.New("map key collision")

type loadOpts struct {
	strict bool
}

type LoadOption func(*loadOpts)

// Strict makes Load fail on map keys and table fields which have no
// corresponding struct field.
func Strict(v bool) LoadOption { return func(o *loadOpts) { o.strict = v } }

// Load stores v in the value pointed to by p.
//
// Bytes load as []byte, dates and datetimes as their rendered tokens (so
// zoned datetimes load into time.Time), and table records as objects keyed
// by field name.
func Load(v ir.Value, p any, opts ...LoadOption) error {
	lo := &loadOpts{}
	for _, f := range opts {
		f(lo)
	}
	x, err := plain(v)
	if err != nil {
		return err
	}
	d, err := json.Marshal(x)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if lo.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(p)
}

// ToValue returns the value of x as encoding/json would marshal it.
func ToValue(x any, opts ...convert.Option) (ir.Value, error) {
	d, err := json.Marshal(x)
	if err != nil {
		return ir.Value{}, err
	}
	return convert.FromJSON(bytes.NewReader(d), opts...)
}

func plain(v ir.Value) (any, error) {
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
		return f, nil
	case ir.StrKind:
		s, _ := v.Str()
		return s, nil
	case ir.BytesKind:
		d, _ := v.Bytes()
		return d, nil
	case ir.DateKind, ir.DateTimeKind:
		return encode.Scalar(v)
	case ir.ListKind:
		return plainValues(v.List().Values())
	case ir.MapKind:
		res := make(map[string]any, v.Map().Len())
		for k, x := range v.Map().All() {
			key, err := plainKey(k)
			if err != nil {
				return nil, err
			}
			if _, dup := res[key]; dup {
				return nil, fmt.Errorf("%w: %s and another key both load as %q", ErrKeyCollision, k, key)
			}
			if res[key], err = plain(x); err != nil {
				return nil, err
			}
		}
		return res, nil
	case ir.TableKind:
		t := v.Table()
		names := t.FieldNames()
		res := make([]map[string]any, 0, t.Len())
		for _, rec := range t.Records() {
			obj := make(map[string]any, len(names))
			for i, x := range rec {
				px, err := plain(x)
				if err != nil {
					return nil, err
				}
				obj[names[i]] = px
			}
			res = append(res, obj)
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown kind %s", v.Kind())
}

func plainValues(vs []ir.Value) ([]any, error) {
	res := make([]any, len(vs))
	for i, x := range vs {
		px, err := plain(x)
		if err != nil {
			return nil, err
		}
		res[i] = px
	}
	return res, nil
}

func plainKey(k ir.Value) (string, error) {
	if s, ok := k.Str(); ok {
		return s, nil
	}
	if i, ok := k.Int(); ok {
		return strconv.FormatInt(i, 10), nil
	}
	return encode.Scalar(k)
}
