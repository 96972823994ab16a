package encode

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/uxf-format/go-uxf/ir"
	"github.com/uxf-format/go-uxf/token"
)

func mustDate(t *testing.T, y int, m time.Month, d int) ir.Value {
	t.Helper()
	v, err := ir.NewDate(y, m, d)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestScalar(t *testing.T) {
	tests := []struct {
		v   ir.Value
		out string
	}{
		{ir.Null(), "null"},
		{ir.FromBool(true), "yes"},
		{ir.FromBool(false), "no"},
		{ir.FromInt(-42), "-42"},
		{ir.FromReal(1), "1.0"},
		{ir.FromReal(-3.14), "-3.14"},
		{ir.FromReal(1e21), "1e+21"},
		{ir.FromReal(2.5e-7), "2.5e-07"},
		{ir.FromStr("plain"), "plain"},
		{ir.FromStr("a\nb"), `a\nb`},
		{ir.FromStr(`say "hi"`), `say \"hi\"`},
		{ir.FromStr(`c:\dir`), `c:\\dir`},
		{ir.FromStr("42"), `4\2`},
		{ir.FromStr("null"), `nul\l`},
		{ir.FromStr("no"), `n\o`},
		{ir.FromStr("(4a)"), `(4a\)`},
		{ir.FromStr("2024-01-15"), `2024-01-1\5`},
		{ir.FromStr(""), ""},
		{ir.FromBytes([]byte{0x4a, 0x6f}), "(:4A6F:)"},
		{ir.FromBytes(nil), "(::)"},
		{mustDate(t, 2024, time.February, 29), "2024-02-29"},
		{ir.FromDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)), "2024-01-15T10:30:00"},
		{ir.FromDateTime(time.Date(2024, 1, 15, 10, 30, 0, 5e8, time.UTC)), "2024-01-15T10:30:00.5"},
		{ir.FromZonedDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)), "2024-01-15T10:30:00Z"},
		{ir.FromZonedDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", -19800))), "2024-01-15T10:30:00-05:30"},
	}
	for _, test := range tests {
		got, err := Scalar(test.v)
		if err != nil {
			t.Errorf("%s: %v", test.v, err)
			continue
		}
		if got != test.out {
			t.Errorf("%s: got %q want %q", test.v, got, test.out)
		}
	}
}

func TestScalarRoundTrip(t *testing.T) {
	vals := []ir.Value{
		ir.Null(),
		ir.FromBool(true),
		ir.FromBool(false),
		ir.FromInt(0),
		ir.FromInt(math.MaxInt64),
		ir.FromInt(math.MinInt64),
		ir.FromReal(0),
		ir.FromReal(0.1),
		ir.FromReal(-1e300),
		ir.FromReal(123456789.125),
		ir.FromReal(math.SmallestNonzeroFloat64),
		ir.FromStr(""),
		ir.FromStr("yes"),
		ir.FromStr("true"),
		ir.FromStr("-0"),
		ir.FromStr("1.5e3"),
		ir.FromStr("n"),
		ir.FromStr("()"),
		ir.FromStr(`\`),
		ir.FromStr(`\n`),
		ir.FromStr("line\nbreak"),
		ir.FromStr("∞ ✓ ȡ"),
		ir.FromStr("2024-01-15T10:30"),
		ir.FromBytes([]byte{}),
		ir.FromBytes([]byte{0, 1, 0xfe, 0xff}),
		mustDate(t, 1, time.January, 1),
		mustDate(t, 9999, time.December, 31),
		ir.FromDateTime(time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.UTC)),
		ir.FromZonedDateTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", 3600))),
	}
	for _, v := range vals {
		tok, err := Scalar(v)
		if err != nil {
			t.Errorf("%s: %v", v, err)
			continue
		}
		if got := token.Naturalize(tok); !ir.Equal(got, v) {
			t.Errorf("%s: rendered %q naturalized to %s", v, tok, got)
		}
	}
}

func TestScalarOptions(t *testing.T) {
	if got := MustScalar(ir.FromBool(true), UseTrueFalse(true)); got != "true" {
		t.Errorf("got %q", got)
	}
	nat := token.New(
		token.WithNullWord("nil"),
		token.WithBoolWords([]string{"on"}, []string{"off"}),
		token.WithBytesForms(token.BytesParens),
	)
	tests := []struct {
		v   ir.Value
		out string
	}{
		{ir.Null(), "nil"},
		{ir.FromBool(false), "off"},
		{ir.FromBytes([]byte{1}), "(01)"},
		{ir.FromStr("on"), `\on`},
		{ir.FromStr("null"), "null"},
	}
	for _, test := range tests {
		got := MustScalar(test.v, WithNaturalizer(nat))
		if got != test.out {
			t.Errorf("%s: got %q want %q", test.v, got, test.out)
		}
		if back := nat.Naturalize(got); !ir.Equal(back, test.v) {
			t.Errorf("%s: %q naturalized to %s", test.v, got, back)
		}
	}
}

func TestScalarUnrenderable(t *testing.T) {
	vals := []ir.Value{
		ir.FromReal(math.NaN()),
		ir.FromReal(math.Inf(1)),
		ir.FromReal(math.Inf(-1)),
		ir.FromDate(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)),
		ir.FromDateTime(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)),
		ir.FromZonedDateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("", 30))),
		ir.FromList(nil),
		ir.FromMap(nil),
		ir.FromTable(nil),
	}
	for _, v := range vals {
		if _, err := Scalar(v); !errors.Is(err, ErrUnrenderable) {
			t.Errorf("%s: got %v want ErrUnrenderable", v, err)
		}
	}
	nat := token.New(token.WithNullWord("nnn"))
	if _, err := Scalar(ir.FromStr("nnn"), WithNaturalizer(nat)); !errors.Is(err, ErrUnrenderable) {
		t.Errorf("got %v want ErrUnrenderable", err)
	}
}
