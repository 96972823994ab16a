package ir

import (
	"fmt"
	"iter"
	"slices"
)

// Field is one column of a table schema.
type Field struct {
	Name string
	// VType optionally restricts the values stored in the field.
	VType string
}

// Fields builds untyped fields from names.
func Fields(names ...string) []Field {
	res := make([]Field, len(names))
	for i, name := range names {
		res[i] = Field{Name: name}
	}
	return res
}

// Table holds records of a fixed number of named fields.
//
// The schema (name and fields) is set once. Records may be shorter than the
// field count; missing trailing fields read as Null.
type Table struct {
	Comment string

	name      string
	fields    []Field
	schemaSet bool
	records   [][]Value
	// open is set while the last record is being filled by Push.
	open bool
}

func NewTable() *Table {
	return &Table{}
}

// NewTableWith returns a table with its schema set.
func NewTableWith(name string, fields ...string) (*Table, error) {
	t := NewTable()
	if err := t.SetSchema(name, fields...); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Kind() Kind      { return TableKind }
func (t *Table) Len() int        { return len(t.records) }
func (t *Table) Empty() bool     { return len(t.records) == 0 }
func (t *Table) Name() string    { return t.name }
func (t *Table) FieldCount() int { return len(t.fields) }
func (t *Table) HasSchema() bool { return t.schemaSet }

// Fields returns a copy of the schema's fields.
func (t *Table) Fields() []Field {
	return slices.Clone(t.fields)
}

func (t *Table) FieldNames() []string {
	res := make([]string, len(t.fields))
	for i := range t.fields {
		res[i] = t.fields[i].Name
	}
	return res
}

// FieldIndex returns the position of the named field or -1.
func (t *Table) FieldIndex(name string) int {
	return slices.IndexFunc(t.fields, func(f Field) bool { return f.Name == name })
}

func (t *Table) SetSchema(name string, fields ...string) error {
	return t.SetSchemaFields(name, Fields(fields...)...)
}

// SetSchemaFields sets the table's name and fields. It may only succeed once
// per table.
func (t *Table) SetSchemaFields(name string, fields ...Field) error {
	if t.schemaSet {
		return fmt.Errorf("%w: table %s", ErrSchemaAlreadySet, t.name)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: table %s", ErrEmptyFieldList, name)
	}
	if err := CheckName(name); err != nil {
		return fmt.Errorf("table name: %w", err)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if err := CheckName(f.Name); err != nil {
			return fmt.Errorf("table %s field: %w", name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q in table %s", ErrDuplicateField, f.Name, name)
		}
		seen[f.Name] = true
		if err := CheckVTypeName(f.VType); err != nil {
			return fmt.Errorf("table %s field %s: %w", name, f.Name, err)
		}
	}
	t.name = name
	t.fields = slices.Clone(fields)
	t.schemaSet = true
	return nil
}

// PushRecord appends one record. Records longer than the field count are
// rejected and leave the table unchanged. A record being filled by Push is
// closed first.
func (t *Table) PushRecord(values ...Value) error {
	if !t.schemaSet {
		return ErrNoSchema
	}
	if len(values) > len(t.fields) {
		return fmt.Errorf("%w: %d values for %d fields in table %s",
			ErrRecordTooLong, len(values), len(t.fields), t.name)
	}
	for i, v := range values {
		if err := t.checkField(i, v); err != nil {
			return err
		}
	}
	t.open = false
	t.records = append(t.records, slices.Clone(values))
	return nil
}

// Push appends v to the open record, opening a new record if there is
// none. The caller ends the record with EndRecord.
func (t *Table) Push(v Value) error {
	if !t.schemaSet {
		return ErrNoSchema
	}
	i := 0
	if t.open {
		i = len(t.records[len(t.records)-1])
	}
	if i >= len(t.fields) {
		return fmt.Errorf("%w: more than %d values in table %s record %d",
			ErrRecordTooLong, len(t.fields), t.name, len(t.records)-1)
	}
	if err := t.checkField(i, v); err != nil {
		return err
	}
	if !t.open {
		t.records = append(t.records, make([]Value, 0, len(t.fields)))
		t.open = true
	}
	last := len(t.records) - 1
	t.records[last] = append(t.records[last], v)
	return nil
}

// EndRecord closes the record opened by Push. It does nothing if no record
// is open.
func (t *Table) EndRecord() {
	t.open = false
}

func (t *Table) checkField(i int, v Value) error {
	if err := checkVType(t.fields[i].VType, v); err != nil {
		return fmt.Errorf("table %s field %s: %w", t.name, t.fields[i].Name, err)
	}
	return nil
}

// FieldAt reads one field of one record. Fields past the end of a short
// record read as Null.
func (t *Table) FieldAt(record, field int) (Value, error) {
	if record < 0 || record >= len(t.records) {
		return Value{}, fmt.Errorf("%w: record %d of %d in table %s",
			ErrIndexOutOfRange, record, len(t.records), t.name)
	}
	if field < 0 || field >= len(t.fields) {
		return Value{}, fmt.Errorf("%w: field %d of %d in table %s",
			ErrIndexOutOfRange, field, len(t.fields), t.name)
	}
	rec := t.records[record]
	if field >= len(rec) {
		return Null(), nil
	}
	return rec[field], nil
}

// Get reads the named field of a record.
func (t *Table) Get(record int, name string) (Value, error) {
	i := t.FieldIndex(name)
	if i == -1 {
		return Value{}, fmt.Errorf("%w: no field %q in table %s", ErrIndexOutOfRange, name, t.name)
	}
	return t.FieldAt(record, i)
}

// Record returns a copy of a record padded with Null to the field count.
func (t *Table) Record(record int) ([]Value, error) {
	if record < 0 || record >= len(t.records) {
		return nil, fmt.Errorf("%w: record %d of %d in table %s",
			ErrIndexOutOfRange, record, len(t.records), t.name)
	}
	return t.padded(t.records[record]), nil
}

func (t *Table) padded(rec []Value) []Value {
	res := make([]Value, len(t.fields))
	copy(res, rec)
	return res
}

// Records iterates over padded copies of the records.
func (t *Table) Records() iter.Seq2[int, []Value] {
	return func(yield func(int, []Value) bool) {
		for i, rec := range t.records {
			if !yield(i, t.padded(rec)) {
				return
			}
		}
	}
}

func (t *Table) Clone() *Table {
	res := &Table{
		Comment:   t.Comment,
		name:      t.name,
		fields:    slices.Clone(t.fields),
		schemaSet: t.schemaSet,
		open:      t.open,
	}
	res.records = make([][]Value, len(t.records))
	for i, rec := range t.records {
		cr := make([]Value, len(rec), cap(rec))
		for j, v := range rec {
			cr[j] = v.Clone()
		}
		res.records[i] = cr
	}
	return res
}
