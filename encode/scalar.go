package encode

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/uxf-format/go-uxf/ir"
	"github.com/uxf-format/go-uxf/token"
)

// ErrUnrenderable is returned for values with no token form: collections,
// non-finite reals and dates outside years 1 to 9999.
var ErrUnrenderable = errors.New("unrenderable value")

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05.999999999"
)

var defaultNaturalizer = token.New()

type EncState struct {
	depth, indent int
	comments      bool
	trueFalse     bool
	nat           *token.Naturalizer

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.nat == nil {
		es.nat = defaultNaturalizer
	}
	return es
}

// Scalar renders a scalar value as a token which naturalizes back to an
// equal value.
func Scalar(v ir.Value, opts ...EncodeOption) (string, error) {
	return scalar(v, newEncState(opts...))
}

// MustScalar is Scalar which panics on error.
func MustScalar(v ir.Value, opts ...EncodeOption) string {
	s, err := Scalar(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func scalar(v ir.Value, es *EncState) (string, error) {
	switch v.Kind() {
	case ir.NullKind:
		return es.nat.NullWord(), nil
	case ir.BoolKind:
		b, _ := v.Bool()
		switch {
		case es.trueFalse && b:
			return "true", nil
		case es.trueFalse:
			return "false", nil
		case b:
			return es.nat.TrueWord(), nil
		default:
			return es.nat.FalseWord(), nil
		}
	case ir.IntKind:
		i, _ := v.Int()
		return strconv.FormatInt(i, 10), nil
	case ir.RealKind:
		f, _ := v.Real()
		return formatReal(f)
	case ir.StrKind:
		s, _ := v.Str()
		return str(s, es.nat)
	case ir.BytesKind:
		d, _ := v.Bytes()
		h := strings.ToUpper(hex.EncodeToString(d))
		if es.nat.BytesForms()&token.BytesColonParens != 0 {
			return "(:" + h + ":)", nil
		}
		return "(" + h + ")", nil
	case ir.DateKind:
		t, _ := v.Date()
		if err := checkYear(t); err != nil {
			return "", err
		}
		return t.Format(dateLayout), nil
	case ir.DateTimeKind:
		t, _ := v.DateTime()
		if err := checkYear(t); err != nil {
			return "", err
		}
		if !v.Zoned() {
			return t.Format(dateTimeLayout), nil
		}
		_, off := t.Zone()
		if off%60 != 0 || off <= -24*3600 || off >= 24*3600 {
			return "", fmt.Errorf("%w: zone offset %ds", ErrUnrenderable, off)
		}
		return t.Format(dateTimeLayout + "Z07:00"), nil
	}
	return "", fmt.Errorf("%w: %s is not a scalar", ErrUnrenderable, v.TypeName())
}

func formatReal(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: real %g", ErrUnrenderable, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func checkYear(t time.Time) error {
	if y := t.Year(); y < 1 || y > 9999 {
		return fmt.Errorf("%w: year %d", ErrUnrenderable, y)
	}
	return nil
}

// str escapes s and, if the result would naturalize to another kind,
// escapes one more character so that it reads back as a str.
func str(s string, nat *token.Naturalizer) (string, error) {
	esc := token.Escape(s)
	if _, rule := nat.Classify(esc); rule == token.RuleStr {
		return esc, nil
	}
	// esc has no backslash here, so any escaped character other than n
	// unescapes to itself.
	for i := len(esc); i > 0; {
		r, size := utf8.DecodeLastRuneInString(esc[:i])
		i -= size
		if r != 'n' {
			return esc[:i] + `\` + esc[i:], nil
		}
	}
	return "", fmt.Errorf("%w: str %q", ErrUnrenderable, s)
}
