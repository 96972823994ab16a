package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/uxf-format/go-uxf/debug"
	"github.com/uxf-format/go-uxf/ir"
)

// ToJSON writes v as JSON followed by a newline.
func ToJSON(v ir.Value, w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	d, err := marshalJSON(v, o)
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

func marshalJSON(v ir.Value, o *options) ([]byte, error) {
	e := &encoder{sorted: o.sorted}
	g, err := e.generic(v, nil)
	if err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.LogAny(g)
	}
	if o.indent == "" {
		return json.Marshal(g)
	}
	return json.MarshalIndent(g, "", o.indent)
}

// FromJSON reads one JSON value. Object member order is kept and numbers
// are naturalized, so 1 reads as an int and 1.0 as a real.
func FromJSON(r io.Reader, opts ...Option) (ir.Value, error) {
	o := newOptions(opts...)
	dec := json.NewDecoder(r)
	dec.UseNumber()
	x, err := readJSON(dec)
	if err != nil {
		return ir.Value{}, decodeErr(nil, fmt.Errorf("%w: %w", ErrSyntax, err))
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected %v after value", tok)
		}
		return ir.Value{}, decodeErr(nil, fmt.Errorf("%w: %w", ErrSyntax, err))
	}
	if debug.Convert() {
		debug.LogAny(x)
	}
	d := &decoder{nat: o.nat}
	return d.value(x, nil)
}

func readJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '[':
		res := []any{}
		for dec.More() {
			x, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, x)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	case '{':
		res := object{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			x, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			res = append(res, member{Key: kt, Value: x})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("unexpected %v", delim)
}
