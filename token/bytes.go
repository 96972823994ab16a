package token

import "github.com/uxf-format/go-uxf/ir"

// BytesForm selects the delimiters accepted around hex byte literals.
type BytesForm int

const (
	// BytesParens accepts (4A6F).
	BytesParens BytesForm = 1 << iota
	// BytesColonParens accepts (:4A6F:).
	BytesColonParens

	AllBytesForms = BytesParens | BytesColonParens
)

func (n *Naturalizer) parseBytes(s string) (ir.Value, bool) {
	var body string
	switch {
	case n.bytesForms&BytesColonParens != 0 && len(s) >= 4 && s[:2] == "(:" && s[len(s)-2:] == ":)":
		body = s[2 : len(s)-2]
	case n.bytesForms&BytesParens != 0 && len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')':
		body = s[1 : len(s)-1]
	default:
		return ir.Value{}, false
	}
	d, ok := hexPairs(body)
	if !ok {
		return ir.Value{}, false
	}
	return ir.FromBytes(d), true
}

// hexPairs decodes pairs of hex digits, allowing whitespace between pairs
// but not inside them.
func hexPairs(s string) ([]byte, bool) {
	res := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); {
		if isSpace(s[i]) {
			i++
			continue
		}
		if i+1 >= len(s) {
			return nil, false
		}
		hi, ok1 := unhex(s[i])
		lo, ok2 := unhex(s[i+1])
		if !ok1 || !ok2 {
			return nil, false
		}
		res = append(res, hi<<4|lo)
		i += 2
	}
	return res, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
