package libdiff

import (
	"fmt"

	"github.com/uxf-format/go-uxf/encode"
	"github.com/uxf-format/go-uxf/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Change is one difference between two values. From is Null for inserts
// and To is Null for deletes.
type Change struct {
	Path ir.Path
	Op   Op
	From ir.Value
	To   ir.Value
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", c.Path, show(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", c.Path, show(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", c.Path, show(c.From), show(c.To))
	}
}

func show(v ir.Value) string {
	if v.IsScalar() {
		if tok, err := encode.Scalar(v); err == nil {
			return v.TypeName() + " " + tok
		}
	}
	return v.String()
}
