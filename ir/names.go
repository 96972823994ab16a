package ir

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxIdentifierLen is the maximum length in runes of table and field names.
const MaxIdentifierLen = 60

var reservedWords = map[string]bool{
	"null":     true,
	"yes":      true,
	"no":       true,
	"true":     true,
	"false":    true,
	"bool":     true,
	"int":      true,
	"real":     true,
	"str":      true,
	"bytes":    true,
	"date":     true,
	"datetime": true,
	"list":     true,
	"map":      true,
	"table":    true,
}

// IsReserved reports whether name is a constant or a built-in type name.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// CheckName checks that name may be used as a table or field name.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: names must be nonempty", ErrInvalidName)
	}
	if n := utf8.RuneCountInString(name); n > MaxIdentifierLen {
		return fmt.Errorf("%w: %q is %d characters long, at most %d allowed",
			ErrInvalidName, name, n, MaxIdentifierLen)
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r != '_' && !unicode.IsLetter(r) {
		return fmt.Errorf("%w: %q must start with a letter or underscore", ErrInvalidName, name)
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: %q may only contain letters, digits, or underscores",
				ErrInvalidName, name)
		}
	}
	if reservedWords[name] {
		return fmt.Errorf("%w: %q is a built-in type name or constant", ErrInvalidName, name)
	}
	return nil
}

// CheckVTypeName checks a vtype annotation: empty, a scalar or collection
// type name, or a table name.
func CheckVTypeName(vtype string) error {
	if vtype == "" {
		return nil
	}
	if _, err := ParseKind(vtype); err == nil {
		return nil
	}
	if err := CheckName(vtype); err != nil {
		return fmt.Errorf("vtype: %w", err)
	}
	return nil
}

func checkVType(vtype string, v Value) error {
	if vtype == "" || v.IsNull() {
		return nil
	}
	if k, err := ParseKind(vtype); err == nil {
		if v.kind != k {
			return fmt.Errorf("%w: got %s, want %s", ErrTypeMismatch, v.TypeName(), vtype)
		}
		return nil
	}
	if v.kind != TableKind || v.table.Name() != vtype {
		got := v.TypeName()
		if v.kind == TableKind {
			got = "table " + v.table.Name()
		}
		return fmt.Errorf("%w: got %s, want table %s", ErrTypeMismatch, got, vtype)
	}
	return nil
}

// Canonicalizer turns arbitrary text into valid table or field names.
// It numbers the names it has to invent.
type Canonicalizer struct {
	count int
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{count: 1}
}

// Canonicalize uses a fresh Canonicalizer.
func Canonicalize(name string, isTableName bool) string {
	return NewCanonicalizer().Canonicalize(name, isTableName)
}

// Canonicalize returns a name derived from name that passes CheckName.
// Whitespace and the separators /\,;:.- become underscores, other invalid
// characters are dropped, and names which cannot start a name or are
// reserved get a T_ (tables) or F_ (fields) prefix.
func (c *Canonicalizer) Canonicalize(name string, isTableName bool) string {
	prefix := "F_"
	if isTableName {
		prefix = "T_"
	}
	b := &strings.Builder{}
	for i, r := range name {
		if i == 0 {
			switch {
			case r == '_' || unicode.IsLetter(r):
				b.WriteRune(r)
			case unicode.IsDigit(r):
				b.WriteString(prefix)
				b.WriteRune(r)
			default:
				b.WriteString(prefix)
			}
			continue
		}
		switch {
		case unicode.IsSpace(r) || strings.ContainsRune(`/\,;:.-`, r):
			if !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	res := b.String()
	switch {
	case res == "":
		res = prefix
	case reservedWords[res]:
		res = prefix + res
	}
	if res == prefix {
		res += strconv.Itoa(c.count)
		c.count++
	}
	if utf8.RuneCountInString(res) > MaxIdentifierLen {
		res = string([]rune(res)[:MaxIdentifierLen])
	}
	return res
}
