package token

import (
	"time"

	"github.com/uxf-format/go-uxf/ir"
)

// parseDate matches YYYY-MM-DD with a valid calendar day.
func parseDate(s string) (ir.Value, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return ir.Value{}, false
	}
	y, ok1 := digitsValue(s[0:4])
	m, ok2 := digitsValue(s[5:7])
	d, ok3 := digitsValue(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return ir.Value{}, false
	}
	v, err := ir.NewDate(y, time.Month(m), d)
	if err != nil {
		return ir.Value{}, false
	}
	return v, true
}

// parseDateTime matches a date, 'T', HH[:MM[:SS[.fraction]]] and an
// optional zone of Z, ±HH, ±HHMM or ±HH:MM. Out of range fields do not
// match.
func parseDateTime(s string) (ir.Value, bool) {
	if len(s) < 13 || s[10] != 'T' {
		return ir.Value{}, false
	}
	date, ok := parseDate(s[:10])
	if !ok {
		return ir.Value{}, false
	}
	rest := s[11:]
	var hms [3]int
	n := 0
	for n < 3 {
		if n > 0 {
			if len(rest) == 0 || rest[0] != ':' {
				break
			}
			rest = rest[1:]
		}
		if len(rest) < 2 {
			return ir.Value{}, false
		}
		v, ok := digitsValue(rest[:2])
		if !ok {
			return ir.Value{}, false
		}
		hms[n] = v
		rest = rest[2:]
		n++
	}
	if hms[0] > 23 || hms[1] > 59 || hms[2] > 59 {
		return ir.Value{}, false
	}
	nsec := 0
	if len(rest) != 0 && rest[0] == '.' {
		if n != 3 {
			return ir.Value{}, false
		}
		digits := asciiDigits(rest[1:])
		if digits == 0 || digits > 9 {
			return ir.Value{}, false
		}
		nsec, _ = digitsValue(rest[1 : 1+digits])
		for i := digits; i < 9; i++ {
			nsec *= 10
		}
		rest = rest[1+digits:]
	}
	loc, ok := parseZone(rest)
	if !ok {
		return ir.Value{}, false
	}
	d, _ := date.Date()
	y, mo, dd := d.Date()
	if loc == nil {
		return ir.FromDateTime(time.Date(y, mo, dd, hms[0], hms[1], hms[2], nsec, time.UTC)), true
	}
	return ir.FromZonedDateTime(time.Date(y, mo, dd, hms[0], hms[1], hms[2], nsec, loc)), true
}

// parseZone returns nil for an empty zone.
func parseZone(z string) (*time.Location, bool) {
	switch {
	case z == "":
		return nil, true
	case z == "Z":
		return time.UTC, true
	case z[0] != '+' && z[0] != '-':
		return nil, false
	}
	sign := 1
	if z[0] == '-' {
		sign = -1
	}
	z = z[1:]
	var hh, mm string
	switch len(z) {
	case 2:
		hh = z
	case 4:
		hh, mm = z[:2], z[2:]
	case 5:
		if z[2] != ':' {
			return nil, false
		}
		hh, mm = z[:2], z[3:]
	default:
		return nil, false
	}
	h, ok := digitsValue(hh)
	if !ok || h > 23 {
		return nil, false
	}
	m := 0
	if mm != "" {
		m, ok = digitsValue(mm)
		if !ok || m > 59 {
			return nil, false
		}
	}
	offset := sign * (h*3600 + m*60)
	if offset == 0 {
		return time.UTC, true
	}
	return time.FixedZone("", offset), true
}
