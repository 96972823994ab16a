package ir

import "fmt"

// Collection is the capability shared by *List, *Map and *Table.
type Collection interface {
	Kind() Kind
	Len() int
	Empty() bool
}

var (
	_ Collection = (*List)(nil)
	_ Collection = (*Map)(nil)
	_ Collection = (*Table)(nil)
)

// Push feeds one value of a flat builder stream into c.
//
// Lists append, maps alternate between key and value, and tables fill the
// open record; the builder ends table records with Table.EndRecord.
func Push(c Collection, v Value) error {
	switch x := c.(type) {
	case *List:
		return x.PushChecked(v)
	case *Map:
		return x.Push(v)
	case *Table:
		return x.Push(v)
	}
	return fmt.Errorf("%w: cannot push to %T", ErrTypeMismatch, c)
}
