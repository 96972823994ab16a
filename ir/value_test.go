package ir

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestKindNames(t *testing.T) {
	var names []string
	for _, k := range Kinds() {
		names = append(names, k.String())
		pk, err := ParseKind(k.String())
		if err != nil || pk != k {
			t.Errorf("%s: got %s %v", k, pk, err)
		}
	}
	want := []string{"null", "bool", "int", "real", "str", "bytes", "date", "datetime", "list", "map", "table"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseKind("float"); err == nil {
		t.Error("float parsed as a kind")
	}
}

func TestValueString(t *testing.T) {
	d, _ := NewDate(2024, time.January, 15)
	tbl, _ := NewTableWith("point", "x")
	tests := []struct {
		v   Value
		out string
	}{
		{Null(), "Null"},
		{FromBool(true), "Bool(true)"},
		{FromInt(42), "Int(42)"},
		{FromReal(-3.14), "Real(-3.14)"},
		{FromStr("x\n"), `Str("x\n")`},
		{FromBytes([]byte{0x4a, 0x6f}), "Bytes([0x4a,0x6f])"},
		{d, "Date(2024-01-15)"},
		{FromDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)), "DateTime(2024-01-15T10:30:00)"},
		{FromZonedDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)), "DateTime(2024-01-15T10:30:00Z)"},
		{FromList(NewList(FromInt(1))), "List(1)"},
		{FromMap(nil), "Map(0)"},
		{FromTable(tbl), "Table(point, 0)"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.out {
			t.Errorf("got %s want %s", got, test.out)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v := FromInt(3)
	if _, ok := v.Str(); ok {
		t.Error("int read as str")
	}
	if v.List() != nil || v.Map() != nil || v.Table() != nil || v.Collection() != nil {
		t.Error("int read as collection")
	}
	if !v.IsKey() || !v.IsScalar() || v.IsCollection() {
		t.Error("wrong int capabilities")
	}
	r := FromReal(1)
	if r.IsKey() {
		t.Error("real is a key kind")
	}
	l := FromList(nil)
	if l.List() == nil || !l.List().Empty() || l.Collection().Kind() != ListKind {
		t.Error("nil list not wrapped as empty")
	}
}

func TestBytesImmutable(t *testing.T) {
	src := []byte{1, 2, 3}
	v := FromBytes(src)
	src[0] = 9
	got, _ := v.Bytes()
	got[1] = 9
	again, _ := v.Bytes()
	if diff := cmp.Diff([]byte{1, 2, 3}, again); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNewDate(t *testing.T) {
	if _, err := NewDate(2023, time.February, 29); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got %v", err)
	}
	if _, err := NewDate(10000, time.January, 1); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("got %v", err)
	}
	d := FromDate(time.Date(2024, 3, 1, 23, 0, 0, 0, time.FixedZone("", -3600)))
	got, _ := d.Date()
	if got.Day() != 1 || got.Hour() != 0 {
		t.Errorf("got %s", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := NewMap()
	m.Insert(FromStr("l"), FromList(NewList(FromInt(1))))
	a := FromMap(m)
	b := a.Clone()
	inner, _ := b.Map().Get(FromStr("l"))
	inner.List().Push(FromInt(2))
	orig, _ := m.Get(FromStr("l"))
	if orig.List().Len() != 1 {
		t.Error("clone shares nested list")
	}
	if Equal(a, b) {
		t.Error("modified clone still equal")
	}
}
