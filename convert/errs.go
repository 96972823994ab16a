package convert

import (
	"errors"
	"fmt"

	"github.com/uxf-format/go-uxf/ir"
)

var (
	ErrUnsupported = errors.New("unsupported value")
	ErrBadMarker   = errors.New("bad UXF marker")
	ErrBadNumber   = errors.New("bad number")
	ErrSyntax      = errors.New("syntax error")
)

// DecodeError locates a decoding failure in the value being built.
type DecodeError struct {
	Path ir.Path
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(p ir.Path, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Path: p, Err: err}
}

func decodeErrf(p ir.Path, format string, args ...any) error {
	return &DecodeError{Path: p, Err: fmt.Errorf(format, args...)}
}
