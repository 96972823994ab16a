package ir

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered sequence of values of any kind.
type List struct {
	// VType optionally restricts the kind (or table name) of the values
	// accepted by PushChecked.
	VType   string
	Comment string

	values []Value
}

func NewList(values ...Value) *List {
	return &List{values: slices.Clone(values)}
}

func (l *List) Kind() Kind   { return ListKind }
func (l *List) Len() int     { return len(l.values) }
func (l *List) Empty() bool  { return len(l.values) == 0 }
func (l *List) Push(v Value) { l.values = append(l.values, v) }

// PushChecked appends v if it conforms to the list's VType.
func (l *List) PushChecked(v Value) error {
	if err := checkVType(l.VType, v); err != nil {
		return err
	}
	l.values = append(l.values, v)
	return nil
}

func (l *List) At(i int) (Value, error) {
	if i < 0 || i >= len(l.values) {
		return Value{}, fmt.Errorf("%w: list index %d (len %d)", ErrIndexOutOfRange, i, len(l.values))
	}
	return l.values[i], nil
}

// Values returns a copy of the list's elements.
func (l *List) Values() []Value {
	return slices.Clone(l.values)
}

func (l *List) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range l.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (l *List) Clone() *List {
	res := &List{VType: l.VType, Comment: l.Comment}
	res.values = make([]Value, len(l.values))
	for i, v := range l.values {
		res.values[i] = v.Clone()
	}
	return res
}
