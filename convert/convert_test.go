package convert

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/opencontainers/go-digest"
	"github.com/uxf-format/go-uxf/format"
	"github.com/uxf-format/go-uxf/ir"
)

func richDoc(t *testing.T) ir.Value {
	t.Helper()
	pts := ir.NewTable()
	if err := pts.SetSchemaFields("point", ir.Field{Name: "x", VType: "int"}, ir.Field{Name: "y"}); err != nil {
		t.Fatal(err)
	}
	pts.Comment = "points"
	pts.PushRecord(ir.FromInt(1), ir.FromInt(2))
	pts.PushRecord(ir.FromInt(3))

	ints := ir.NewList(ir.FromInt(1), ir.FromInt(2))
	ints.VType = "int"
	ints.Comment = "small"

	byInt := ir.NewMap()
	byInt.KType = "int"
	byInt.Insert(ir.FromInt(1), ir.FromStr("one"))
	byInt.Insert(ir.FromInt(-2), ir.FromStr("minus two"))

	day, err := ir.NewDate(2024, time.February, 29)
	if err != nil {
		t.Fatal(err)
	}
	mixed := ir.NewMap()
	mixed.Insert(day, ir.FromBool(true))
	mixed.Insert(ir.FromBytes([]byte{1}), ir.Null())

	tricky := ir.NewMap()
	tricky.Insert(ir.FromStr("UXF^bytes"), ir.FromInt(1))

	m := ir.NewMap()
	m.Insert(ir.FromStr("pts"), ir.FromTable(pts))
	m.Insert(ir.FromStr("ints"), ir.FromList(ints))
	m.Insert(ir.FromStr("byint"), ir.FromMap(byInt))
	m.Insert(ir.FromStr("mixed"), ir.FromMap(mixed))
	m.Insert(ir.FromStr("tricky"), ir.FromMap(tricky))
	m.Insert(ir.FromStr("real"), ir.FromReal(2))
	m.Insert(ir.FromStr("neg"), ir.FromReal(-0.5))
	m.Insert(ir.FromStr("str"), ir.FromStr("42"))
	m.Insert(ir.FromStr("when"), ir.FromZonedDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", 3600))))
	m.Insert(ir.FromStr("naive"), ir.FromDateTime(time.Date(2024, 1, 15, 10, 30, 0, 250000000, time.UTC)))
	m.Insert(ir.FromStr("bytes"), ir.FromBytes([]byte{0x12, 0x34}))
	m.Insert(ir.FromStr("empty"), ir.FromList(nil))
	m.Insert(ir.FromStr("emptymap"), ir.FromMap(nil))
	m.Insert(ir.FromStr("nothing"), ir.Null())
	m.Insert(ir.FromStr("big"), ir.FromInt(math.MaxInt64))
	m.Insert(ir.FromStr("small"), ir.FromInt(math.MinInt64))
	return ir.FromMap(m)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			want := richDoc(t)
			buf := &bytes.Buffer{}
			if err := Encode(want, buf, f); err != nil {
				t.Fatal(err)
			}
			got, err := Decode(bytes.NewReader(buf.Bytes()), f)
			if err != nil {
				t.Fatalf("%v\n%s", err, buf.String())
			}
			if !ir.Identical(got, want) {
				t.Errorf("round trip differs:\n%s", buf.String())
			}
			keys := got.Map().Keys()
			if len(keys) == 0 || !ir.Equal(keys[0], ir.FromStr("pts")) {
				t.Errorf("key order lost: %v", keys)
			}
		})
	}
}

func TestToJSON(t *testing.T) {
	m := ir.NewMap()
	m.Insert(ir.FromStr("name"), ir.FromStr("x"))
	m.Insert(ir.FromStr("n"), ir.FromInt(1))
	m.Insert(ir.FromStr("r"), ir.FromReal(2))
	m.Insert(ir.FromStr("b"), ir.FromBytes([]byte("Jo")))
	d, _ := ir.NewDate(2024, time.January, 15)
	m.Insert(ir.FromStr("d"), d)
	m.Insert(ir.FromStr("l"), ir.FromList(ir.NewList(ir.FromBool(true), ir.Null())))
	buf := &bytes.Buffer{}
	if err := ToJSON(ir.FromMap(m), buf, Indent("")); err != nil {
		t.Fatal(err)
	}
	want := `{"name":"x","n":1,"r":2.0,"b":{"UXF^bytes":"4A6F"},"d":{"UXF^date":"2024-01-15"},"l":[true,null]}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToJSONIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := ToJSON(ir.FromList(ir.NewList(ir.FromInt(1))), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[\n  1\n]\n" {
		t.Errorf("got %q", got)
	}
}

func TestToJSONNonFinite(t *testing.T) {
	v := ir.FromList(ir.NewList(ir.FromReal(math.Inf(1))))
	if err := ToJSON(v, &bytes.Buffer{}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
	buf := &bytes.Buffer{}
	if err := ToYAML(v, buf); err != nil {
		t.Fatal(err)
	}
	got, err := FromYAML(buf)
	if err != nil {
		t.Fatal(err)
	}
	f, _ := got.List().Values()[0].Real()
	if !math.IsInf(f, 1) {
		t.Errorf("got %g", f)
	}
}

func TestFromJSONPlain(t *testing.T) {
	in := `{"b": 1, "a": [1.0, "x", true, null, -0, 2e3], "c": {"d": "2024-01-15"}, "b": 7}`
	got, err := FromJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	c := ir.NewMap()
	c.Insert(ir.FromStr("d"), ir.FromStr("2024-01-15"))
	want := ir.NewMap()
	want.Insert(ir.FromStr("b"), ir.FromInt(7))
	want.Insert(ir.FromStr("a"), ir.FromList(ir.NewList(
		ir.FromReal(1), ir.FromStr("x"), ir.FromBool(true), ir.Null(), ir.FromInt(0), ir.FromReal(2000),
	)))
	want.Insert(ir.FromStr("c"), ir.FromMap(c))
	if !ir.Equal(got, ir.FromMap(want)) {
		t.Errorf("got %v", got.Map().Keys())
	}
	var order []string
	for k := range got.Map().All() {
		s, _ := k.Str()
		order = append(order, s)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, order); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		path string
	}{
		{in: `{"UXF^bytes": "zz"}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^bytes": 1}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^date": "2023-02-29"}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^nope": 1}`, err: ErrBadMarker, path: "$"},
		{in: `{"a": {"UXF^map": {"entries": [[1.5, 1]]}}}`, err: ir.ErrInvalidKeyKind, path: "$.a"},
		{in: `{"UXF^map": {"entries": [[1]]}}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^map": {"ktype": "real", "entries": []}}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^list": {"vtype": "int", "list": [1, "x"]}}`, err: ir.ErrTypeMismatch, path: "$[1]"},
		{in: `{"UXF^list": {"list": [], "extra": 1}}`, err: ErrBadMarker, path: "$"},
		{in: `{"UXF^table": {"name": "t", "fields": [{"name": "x"}], "records": [[1, 2]]}}`, err: ir.ErrRecordTooLong, path: "$[0]"},
		{in: `{"UXF^table": {"name": "t", "fields": [{"name": "x"}, {"name": "x"}]}}`, err: ir.ErrDuplicateField, path: "$"},
		{in: `{"UXF^table": {"name": "t", "records": [[1]]}}`, err: ErrBadMarker, path: "$"},
		{in: `[1e999]`, err: ErrBadNumber, path: "$[0]"},
		{in: `[1, 2`, err: ErrSyntax, path: "$"},
		{in: `1 2`, err: ErrSyntax, path: "$"},
		{in: ``, err: ErrSyntax, path: "$"},
	}
	for _, test := range tests {
		_, err := FromJSON(strings.NewReader(test.in))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got %v want %v", test.in, err, test.err)
			continue
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("%s: %v is not a DecodeError", test.in, err)
			continue
		}
		if got := de.Path.String(); got != test.path {
			t.Errorf("%s: got path %s want %s", test.in, got, test.path)
		}
	}
}

func TestFromYAML(t *testing.T) {
	in := `
name: x
count: 3
ratio: 0.5
tags: [a, "1"]
7: seven
`
	got, err := FromYAML(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	m := got.Map()
	if m == nil {
		t.Fatalf("got %s", got)
	}
	tests := []struct {
		key  ir.Value
		want ir.Value
	}{
		{ir.FromStr("name"), ir.FromStr("x")},
		{ir.FromStr("count"), ir.FromInt(3)},
		{ir.FromStr("ratio"), ir.FromReal(0.5)},
		{ir.FromStr("tags"), ir.FromList(ir.NewList(ir.FromStr("a"), ir.FromStr("1")))},
		{ir.FromInt(7), ir.FromStr("seven")},
	}
	for _, test := range tests {
		v, ok := m.Get(test.key)
		if !ok || !ir.Equal(v, test.want) {
			t.Errorf("%s: got %s %t", test.key, v, ok)
		}
	}
	if _, err := FromYAML(strings.NewReader("a: [1")); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestFromYAMLKeys(t *testing.T) {
	in := `
7: int
"7": str
-2: neg
1.5: real
true: bool
2024-01-15: date
`
	got, err := FromYAML(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Value{
		ir.FromInt(7),
		ir.FromStr("7"),
		ir.FromInt(-2),
		ir.FromStr("1.5"),
		ir.FromStr("true"),
		ir.FromStr("2024-01-15"),
	}
	keys := got.Map().Keys()
	if len(keys) != len(want) {
		t.Fatalf("got keys %v", keys)
	}
	for i := range want {
		if !ir.Equal(keys[i], want[i]) {
			t.Errorf("key %d: got %s want %s", i, keys[i], want[i])
		}
	}
}

func TestFromYAMLAnchors(t *testing.T) {
	in := `
base: &b
  x: 1
  y: 2
copy: *b
point:
  <<: *b
  z: 3
blob: !!binary yv4=
`
	got, err := FromYAML(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	m := got.Map()
	base, _ := m.Get(ir.FromStr("base"))
	cp, _ := m.Get(ir.FromStr("copy"))
	if base.Map() == nil || !ir.Equal(base, cp) {
		t.Errorf("alias: got %s want %s", cp, base)
	}
	point, _ := m.Get(ir.FromStr("point"))
	var keys []string
	for _, k := range point.Map().Keys() {
		s, _ := k.Str()
		keys = append(keys, s)
	}
	if diff := cmp.Diff([]string{"x", "y", "z"}, keys); diff != "" {
		t.Errorf("merged keys (-want +got):\n%s", diff)
	}
	blob, _ := m.Get(ir.FromStr("blob"))
	if !ir.Equal(blob, ir.FromBytes([]byte{0xca, 0xfe})) {
		t.Errorf("blob: got %s", blob)
	}
	if _, err := FromYAML(strings.NewReader("a: *nope\n")); err == nil {
		t.Error("expected an error for an unknown alias")
	}
}

func TestDigest(t *testing.T) {
	a, b := ir.NewMap(), ir.NewMap()
	a.Insert(ir.FromStr("x"), ir.FromInt(1))
	a.Insert(ir.FromStr("y"), ir.FromInt(2))
	b.Insert(ir.FromStr("y"), ir.FromInt(2))
	b.Insert(ir.FromStr("x"), ir.FromInt(1))
	da, err := Digest(ir.FromMap(a))
	if err != nil {
		t.Fatal(err)
	}
	db, err := Digest(ir.FromMap(b))
	if err != nil {
		t.Fatal(err)
	}
	if da != db {
		t.Errorf("insertion order changes digest: %s %s", da, db)
	}
	if da.Algorithm() != digest.SHA256 {
		t.Errorf("got algorithm %s", da.Algorithm())
	}
	if err := da.Validate(); err != nil {
		t.Error(err)
	}
	want := digest.FromString(`{"x":1,"y":2}`)
	if da != want {
		t.Errorf("got %s want %s", da, want)
	}
	b.Insert(ir.FromStr("x"), ir.FromInt(3))
	if dc, _ := Digest(ir.FromMap(b)); dc == da {
		t.Error("different values share a digest")
	}
	if _, err := Digest(ir.FromReal(math.NaN())); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v", err)
	}
}

func TestBadFormat(t *testing.T) {
	if err := Encode(ir.Null(), &bytes.Buffer{}, format.Format(9)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if _, err := Decode(strings.NewReader("null"), format.Format(9)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
