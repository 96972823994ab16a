package ir

import "fmt"

// Kind is the discriminant of a Value.
//
// Kinds are declared in rank order, so comparing two kinds numerically
// gives the cross-kind ordering used by Compare.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	RealKind
	StrKind
	BytesKind
	DateKind
	DateTimeKind
	ListKind
	MapKind
	TableKind
)

var kindNames = [...]string{
	NullKind:     "null",
	BoolKind:     "bool",
	IntKind:      "int",
	RealKind:     "real",
	StrKind:      "str",
	BytesKind:    "bytes",
	DateKind:     "date",
	DateTimeKind: "datetime",
	ListKind:     "list",
	MapKind:      "map",
	TableKind:    "table",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown kind>"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("<err: %d is not a kind>", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind returns the kind whose type name is name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognized kind %q", name)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		RealKind,
		StrKind,
		BytesKind,
		DateKind,
		DateTimeKind,
		ListKind,
		MapKind,
		TableKind,
	}
}

func (k Kind) IsScalar() bool {
	return k >= NullKind && k <= DateTimeKind
}

// IsKey reports whether values of kind k may be used as map keys.
func (k Kind) IsKey() bool {
	switch k {
	case IntKind, StrKind, BytesKind, DateKind, DateTimeKind:
		return true
	default:
		return false
	}
}

func (k Kind) IsCollection() bool {
	switch k {
	case ListKind, MapKind, TableKind:
		return true
	default:
		return false
	}
}
