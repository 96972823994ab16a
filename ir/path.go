package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a Path: a list index or table record number, or a
// map key or table field name.
type Segment struct {
	// Index is used when Key is nil.
	Index int
	Key   *Value
}

func IndexSegment(i int) Segment {
	return Segment{Index: i}
}

func KeySegment(k Value) Segment {
	return Segment{Key: &k}
}

func FieldSegment(name string) Segment {
	return KeySegment(FromStr(name))
}

// Path locates a value inside a value tree. Its string form starts with
// '$' and continues with [i] for indexes, .name or .'quoted name' for str
// keys and field names, and {k} for other keys.
type Path []Segment

func (p Path) Append(s Segment) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, s := range p {
		if s.Key == nil {
			b.WriteString("[" + strconv.Itoa(s.Index) + "]")
			continue
		}
		if str, ok := s.Key.Str(); ok {
			if str != "" && strings.IndexAny(str, "'.[]{}$\\ \t\n") == -1 {
				b.WriteString("." + str)
				continue
			}
			str = strings.ReplaceAll(str, `\`, `\\`)
			b.WriteString(".'" + strings.ReplaceAll(str, "'", `\'`) + "'")
			continue
		}
		if i, ok := s.Key.Int(); ok {
			b.WriteString("{" + strconv.FormatInt(i, 10) + "}")
			continue
		}
		b.WriteString("{" + s.Key.String() + "}")
	}
	return b.String()
}

// ParsePath parses the string form of a path. Only str and int keys can be
// expressed.
func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrBadPath, p)
	}
	var res Path
	frag := p[1:]
	for len(frag) != 0 {
		switch frag[0] {
		case '.':
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
			}
			res = append(res, FieldSegment(field))
			frag = rest
		case '[', '{':
			closer := byte(']')
			if frag[0] == '{' {
				closer = '}'
			}
			i := strings.IndexByte(frag, closer)
			if i == -1 {
				return nil, fmt.Errorf("%w: %q: expected %q", ErrBadPath, p, closer)
			}
			if closer == ']' {
				n, err := strconv.Atoi(frag[1:i])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, p, frag[1:i])
				}
				res = append(res, IndexSegment(n))
			} else {
				n, err := strconv.ParseInt(frag[1:i], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q: bad int key %q", ErrBadPath, p, frag[1:i])
				}
				res = append(res, KeySegment(FromInt(n)))
			}
			frag = frag[i+1:]
		default:
			return nil, fmt.Errorf("%w: %q: expected '.', '[' or '{'", ErrBadPath, p)
		}
	}
	return res, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[{")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			res = append(res, c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the value at p below v. A table index selects a record;
// when it is followed by a field name or index the field value is
// returned, otherwise the padded record as a list.
func (v Value) GetPath(p Path) (Value, error) {
	cur := v
	for i := 0; i < len(p); i++ {
		s := p[i]
		switch cur.kind {
		case ListKind:
			if s.Key != nil {
				return Value{}, fmt.Errorf("%w: key segment on list at %s", ErrBadPath, p[:i])
			}
			x, err := cur.list.At(s.Index)
			if err != nil {
				return Value{}, err
			}
			cur = x
		case MapKind:
			key := FromInt(int64(s.Index))
			if s.Key != nil {
				key = *s.Key
			}
			x, ok := cur.m.Get(key)
			if !ok {
				return Value{}, fmt.Errorf("%w: no key %s at %s", ErrBadPath, key, p[:i])
			}
			cur = x
		case TableKind:
			if s.Key != nil {
				return Value{}, fmt.Errorf("%w: key segment on table at %s", ErrBadPath, p[:i])
			}
			if i == len(p)-1 {
				rec, err := cur.table.Record(s.Index)
				if err != nil {
					return Value{}, err
				}
				return FromList(&List{values: rec}), nil
			}
			i++
			f := p[i]
			var (
				x   Value
				err error
			)
			if f.Key != nil {
				name, _ := f.Key.Str()
				x, err = cur.table.Get(s.Index, name)
			} else {
				x, err = cur.table.FieldAt(s.Index, f.Index)
			}
			if err != nil {
				return Value{}, err
			}
			cur = x
		default:
			return Value{}, fmt.Errorf("%w: %s is a scalar", ErrBadPath, p[:i])
		}
	}
	return cur, nil
}
