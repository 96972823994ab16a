package token

// isInt reports whether s matches -?[0-9]+ without superfluous leading
// zeros; "0" and "-0" match, "007" does not.
func isInt(s string) bool {
	d := s
	if len(d) != 0 && d[0] == '-' {
		d = d[1:]
	}
	n := asciiDigits(d)
	if n == 0 || n != len(d) {
		return false
	}
	return n == 1 || d[0] != '0'
}

// isReal reports whether s matches -?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?
// with a fraction or an exponent present.
func isReal(s string) bool {
	d := s
	if len(d) != 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	if f+e == 0 {
		return false
	}
	return digits+f+e == len(d)
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d string) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

// digitsValue parses an all-digit string which is known to be short.
func digitsValue(d string) (int, bool) {
	if len(d) == 0 {
		return 0, false
	}
	v := 0
	for i := 0; i < len(d); i++ {
		if !asciiDigit(d[i]) {
			return 0, false
		}
		v = v*10 + int(d[i]-'0')
	}
	return v, true
}
