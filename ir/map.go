package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Map associates key values with values, keeping insertion order.
//
// Keys must be of a key kind (int, str, bytes, date, datetime) and are
// unique under Equal: inserting a present key replaces its value and keeps
// its position.
type Map struct {
	// KType and VType optionally restrict keys and values.
	KType   string
	VType   string
	Comment string

	keys    []Value
	values  []Value
	index   map[mapKey]int
	pending *Value
}

// mapKey is the comparable form of a key value; two keys are Equal iff
// their mapKeys are ==.
type mapKey struct {
	kind  Kind
	i     int64
	s     string
	sec   int64
	nsec  int
	zoned bool
}

func keyOf(v Value) mapKey {
	k := mapKey{kind: v.kind}
	switch v.kind {
	case IntKind:
		k.i = v.i
	case StrKind, BytesKind:
		k.s = v.s
	case DateKind, DateTimeKind:
		k.sec = v.t.Unix()
		k.nsec = v.t.Nanosecond()
		k.zoned = v.zoned
	}
	return k
}

func NewMap() *Map {
	return &Map{}
}

func (m *Map) Kind() Kind  { return MapKind }
func (m *Map) Len() int    { return len(m.keys) }
func (m *Map) Empty() bool { return len(m.keys) == 0 }

func (m *Map) checkKey(key Value) error {
	if !key.IsKey() {
		return fmt.Errorf("%w: %s", ErrInvalidKeyKind, key.TypeName())
	}
	if m.KType != "" && key.TypeName() != m.KType {
		return fmt.Errorf("%w: key %s, map ktype %s", ErrTypeMismatch, key.TypeName(), m.KType)
	}
	return nil
}

// Insert sets key to value. On error the map is unchanged.
func (m *Map) Insert(key, value Value) error {
	if err := m.checkKey(key); err != nil {
		return err
	}
	if err := checkVType(m.VType, value); err != nil {
		return err
	}
	k := keyOf(key)
	if i, ok := m.index[k]; ok {
		m.values[i] = value
		return nil
	}
	if m.index == nil {
		m.index = make(map[mapKey]int)
	}
	m.index[k] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	return nil
}

func (m *Map) Get(key Value) (Value, bool) {
	if !key.IsKey() {
		return Value{}, false
	}
	i, ok := m.index[keyOf(key)]
	if !ok {
		return Value{}, false
	}
	return m.values[i], true
}

func (m *Map) Has(key Value) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key Value) bool {
	if !key.IsKey() {
		return false
	}
	k := keyOf(key)
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	m.values = slices.Delete(m.values, i, i+1)
	for j := i; j < len(m.keys); j++ {
		m.index[keyOf(m.keys[j])] = j
	}
	return true
}

// Push implements the flat builder stream for maps: the first value pushed
// is held as a pending key and the next one is inserted under it.
func (m *Map) Push(v Value) error {
	if m.pending == nil {
		if err := m.checkKey(v); err != nil {
			return err
		}
		m.pending = &v
		return nil
	}
	if err := m.Insert(*m.pending, v); err != nil {
		return err
	}
	m.pending = nil
	return nil
}

// PendingKey returns a key pushed without its value.
func (m *Map) PendingKey() (Value, bool) {
	if m.pending == nil {
		return Value{}, false
	}
	return *m.pending, true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Value {
	return slices.Clone(m.keys)
}

// SortedKeys returns the keys ordered by CompareKeys.
func (m *Map) SortedKeys() []Value {
	res := slices.Clone(m.keys)
	slices.SortFunc(res, Compare)
	return res
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

func (m *Map) Clone() *Map {
	res := &Map{KType: m.KType, VType: m.VType, Comment: m.Comment}
	res.keys = slices.Clone(m.keys)
	res.values = make([]Value, len(m.values))
	for i, v := range m.values {
		res.values[i] = v.Clone()
	}
	res.index = maps.Clone(m.index)
	if m.pending != nil {
		p := *m.pending
		res.pending = &p
	}
	return res
}
