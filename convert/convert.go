package convert

import (
	"fmt"
	"io"

	"github.com/uxf-format/go-uxf/format"
	"github.com/uxf-format/go-uxf/ir"
)

// Encode writes v in format f.
func Encode(v ir.Value, w io.Writer, f format.Format, opts ...Option) error {
	switch f {
	case format.JSONFormat:
		return ToJSON(v, w, opts...)
	case format.YAMLFormat:
		return ToYAML(v, w, opts...)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

// Decode reads a value in format f.
func Decode(r io.Reader, f format.Format, opts ...Option) (ir.Value, error) {
	switch f {
	case format.JSONFormat:
		return FromJSON(r, opts...)
	case format.YAMLFormat:
		return FromYAML(r, opts...)
	}
	return ir.Value{}, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}
