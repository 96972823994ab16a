package ir

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestCompareKindRank(t *testing.T) {
	d, _ := NewDate(2024, time.January, 1)
	tbl, _ := NewTableWith("t", "f")
	ranked := []Value{
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(-5),
		FromInt(100),
		FromReal(-100),
		FromStr(""),
		FromStr("b"),
		FromBytes(nil),
		d,
		FromDateTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
		FromList(NewList()),
		FromMap(NewMap()),
		FromTable(tbl),
	}
	shuffled := slices.Clone(ranked)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, Compare)
	for i := range ranked {
		if !Equal(shuffled[i], ranked[i]) {
			t.Errorf("%d: got %s want %s", i, shuffled[i], ranked[i])
		}
	}
}

func TestCompareKeys(t *testing.T) {
	if _, err := CompareKeys(FromInt(1), FromReal(1)); err == nil {
		t.Error("real accepted as key")
	}
	c, err := CompareKeys(FromInt(1000), FromStr("1"))
	if err != nil || c != -1 {
		t.Errorf("got %d %v", c, err)
	}
}

func TestEqualScalars(t *testing.T) {
	zoned := time.Date(2024, 1, 15, 10, 0, 0, 0, time.FixedZone("", 3600))
	tests := []struct {
		a, b  Value
		equal bool
	}{
		{FromInt(1), FromInt(1), true},
		{FromInt(1), FromReal(1), false},
		{FromReal(0), FromReal(math.Copysign(0, -1)), true},
		{FromReal(math.NaN()), FromReal(math.NaN()), true},
		{FromStr("a"), FromBytes([]byte("a")), false},
		{FromZonedDateTime(zoned), FromZonedDateTime(zoned.UTC()), true},
		{FromZonedDateTime(zoned.UTC()), FromDateTime(zoned.UTC()), false},
		{Null(), Value{}, true},
	}
	for _, test := range tests {
		if got := Equal(test.a, test.b); got != test.equal {
			t.Errorf("%s == %s: got %t", test.a, test.b, got)
		}
		if test.equal && test.a.Hash() != test.b.Hash() {
			t.Errorf("%s and %s hash differently", test.a, test.b)
		}
	}
	naive := FromDateTime(zoned.UTC())
	if Compare(naive, FromZonedDateTime(zoned)) != -1 {
		t.Error("naive datetime should order before zoned at the same instant")
	}
}

func TestEqualLists(t *testing.T) {
	a := FromList(NewList(FromInt(1), FromStr("x")))
	b := FromList(NewList(FromInt(1), FromStr("x")))
	c := FromList(NewList(FromStr("x"), FromInt(1)))
	d := FromList(NewList(FromInt(1)))
	if !Equal(a, b) {
		t.Error("equal lists differ")
	}
	if Equal(a, c) {
		t.Error("list order ignored")
	}
	if Equal(a, d) {
		t.Error("list length ignored")
	}
}

func TestEqualMapsOrderIndependent(t *testing.T) {
	a, b := NewMap(), NewMap()
	a.Insert(FromStr("x"), FromInt(1))
	a.Insert(FromStr("y"), FromInt(2))
	b.Insert(FromStr("y"), FromInt(2))
	b.Insert(FromStr("x"), FromInt(1))
	b.Comment = "different"
	if !Equal(FromMap(a), FromMap(b)) {
		t.Error("insertion order or comment affects equality")
	}
	if FromMap(a).Hash() != FromMap(b).Hash() {
		t.Error("insertion order affects hash")
	}
	if Identical(FromMap(a), FromMap(b)) {
		t.Error("comment ignored by Identical")
	}
	b.Insert(FromStr("x"), FromInt(3))
	if Equal(FromMap(a), FromMap(b)) {
		t.Error("value difference ignored")
	}
}

func TestIdenticalNested(t *testing.T) {
	inner := NewList(FromInt(1))
	inner.VType = "int"
	a := FromList(NewList(FromList(inner)))
	b := a.Clone()
	if !Identical(a, b) {
		t.Error("clone not identical")
	}
	b.List().values[0].List().VType = ""
	if !Equal(a, b) {
		t.Error("vtype affects equality")
	}
	if Identical(a, b) {
		t.Error("nested vtype ignored by Identical")
	}
}
