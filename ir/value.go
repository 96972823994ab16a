package ir

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is a UXF datum: a scalar or a collection.
//
// The zero Value is Null. Scalar payloads are unexported so that Str and
// Bytes values cannot be modified after construction; collections are held
// by pointer and may be grown by their owner.
type Value struct {
	kind Kind

	b bool
	i int64
	r float64
	// s holds Str text or the Bytes payload.
	s string
	// t holds Date (UTC midnight) and DateTime values. Naive datetimes are
	// stored with their wall clock in UTC.
	t     time.Time
	zoned bool

	list  *List
	m     *Map
	table *Table
}

func Null() Value {
	return Value{}
}

func FromBool(v bool) Value {
	return Value{kind: BoolKind, b: v}
}

func FromInt(v int64) Value {
	return Value{kind: IntKind, i: v}
}

func FromReal(v float64) Value {
	return Value{kind: RealKind, r: v}
}

func FromStr(v string) Value {
	return Value{kind: StrKind, s: v}
}

// FromBytes copies d.
func FromBytes(d []byte) Value {
	return Value{kind: BytesKind, s: string(d)}
}

// FromDate keeps the calendar date of t in t's location.
func FromDate(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: DateKind, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NewDate returns a Date value, checking that the day exists in the given
// month and year and that year is within 1 to 9999.
func NewDate(year int, month time.Month, day int) (Value, error) {
	if !ValidDate(year, int(month), day) {
		return Value{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Value{kind: DateKind, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// ValidDate reports whether year-month-day is a calendar date with a year
// from 1 to 9999.
func ValidDate(year, month, day int) bool {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysIn(year, time.Month(month))
}

// DaysIn returns the number of days in month of year, following the
// Gregorian leap year rules.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FromDateTime returns a DateTime without a zone offset holding the wall
// clock of t.
func FromDateTime(t time.Time) Value {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return Value{
		kind: DateTimeKind,
		t:    time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC),
	}
}

// FromZonedDateTime returns a DateTime which keeps the zone offset of t.
func FromZonedDateTime(t time.Time) Value {
	return Value{kind: DateTimeKind, t: t, zoned: true}
}

// FromList wraps l; a nil l yields an empty list.
func FromList(l *List) Value {
	if l == nil {
		l = NewList()
	}
	return Value{kind: ListKind, list: l}
}

// FromMap wraps m; a nil m yields an empty map.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: MapKind, m: m}
}

// FromTable wraps t; a nil t yields an empty table without a schema.
func FromTable(t *Table) Value {
	if t == nil {
		t = NewTable()
	}
	return Value{kind: TableKind, table: t}
}

func (v Value) Kind() Kind { return v.kind }

// TypeName is the stable name of v's kind, as used in diagnostics and
// serialization.
func (v Value) TypeName() string { return v.kind.String() }

func (v Value) IsNull() bool       { return v.kind == NullKind }
func (v Value) IsScalar() bool     { return v.kind.IsScalar() }
func (v Value) IsKey() bool        { return v.kind.IsKey() }
func (v Value) IsCollection() bool { return v.kind.IsCollection() }

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

func (v Value) Int() (int64, bool) {
	return v.i, v.kind == IntKind
}

func (v Value) Real() (float64, bool) {
	return v.r, v.kind == RealKind
}

func (v Value) Str() (string, bool) {
	if v.kind != StrKind {
		return "", false
	}
	return v.s, true
}

// Bytes returns a copy of the payload of a Bytes value.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != BytesKind {
		return nil, false
	}
	return []byte(v.s), true
}

// Date returns the date at midnight UTC.
func (v Value) Date() (time.Time, bool) {
	if v.kind != DateKind {
		return time.Time{}, false
	}
	return v.t, true
}

// DateTime returns the time of a DateTime value. For values without a zone
// offset the result carries the wall clock in UTC; see Zoned.
func (v Value) DateTime() (time.Time, bool) {
	if v.kind != DateTimeKind {
		return time.Time{}, false
	}
	return v.t, true
}

// Zoned reports whether v is a DateTime with a zone offset.
func (v Value) Zoned() bool {
	return v.kind == DateTimeKind && v.zoned
}

func (v Value) List() *List {
	if v.kind != ListKind {
		return nil
	}
	return v.list
}

func (v Value) Map() *Map {
	if v.kind != MapKind {
		return nil
	}
	return v.m
}

func (v Value) Table() *Table {
	if v.kind != TableKind {
		return nil
	}
	return v.table
}

// Collection returns the collection held by v, or nil for scalars.
func (v Value) Collection() Collection {
	switch v.kind {
	case ListKind:
		return v.list
	case MapKind:
		return v.m
	case TableKind:
		return v.table
	default:
		return nil
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case ListKind:
		v.list = v.list.Clone()
	case MapKind:
		v.m = v.m.Clone()
	case TableKind:
		v.table = v.table.Clone()
	}
	return v
}

func (v Value) String() string {
	switch v.kind {
	case NullKind:
		return "Null"
	case BoolKind:
		return "Bool(" + strconv.FormatBool(v.b) + ")"
	case IntKind:
		return "Int(" + strconv.FormatInt(v.i, 10) + ")"
	case RealKind:
		return "Real(" + strconv.FormatFloat(v.r, 'g', -1, 64) + ")"
	case StrKind:
		return "Str(" + strconv.Quote(v.s) + ")"
	case BytesKind:
		b := &strings.Builder{}
		b.WriteString("Bytes([")
		for i := 0; i < len(v.s); i++ {
			if i != 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "0x%02x", v.s[i])
		}
		b.WriteString("])")
		return b.String()
	case DateKind:
		return "Date(" + v.t.Format(time.DateOnly) + ")"
	case DateTimeKind:
		if v.zoned {
			return "DateTime(" + v.t.Format(time.RFC3339Nano) + ")"
		}
		return "DateTime(" + v.t.Format("2006-01-02T15:04:05.999999999") + ")"
	case ListKind:
		return fmt.Sprintf("List(%d)", v.list.Len())
	case MapKind:
		return fmt.Sprintf("Map(%d)", v.m.Len())
	case TableKind:
		return fmt.Sprintf("Table(%s, %d)", v.table.Name(), v.table.Len())
	}
	return "<invalid value>"
}
