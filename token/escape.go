package token

import "strings"

// Unescape resolves backslash escapes in a string token: \n becomes a
// newline and a backslash followed by any other character becomes that
// character. A trailing lone backslash is kept.
func Unescape(v string) string {
	if strings.IndexByte(v, '\\') == -1 {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i == len(v)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		if v[i] == 'n' {
			b.WriteByte('\n')
			continue
		}
		b.WriteByte(v[i])
	}
	return b.String()
}

// Escape is the inverse of Unescape for the characters which must be
// escaped: backslash, newline and double quote.
func Escape(v string) string {
	if strings.IndexAny(v, "\\\n\"") == -1 {
		return v
	}
	b := &strings.Builder{}
	b.Grow(len(v) + 4)
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
