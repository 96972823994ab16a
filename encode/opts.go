package encode

import "github.com/uxf-format/go-uxf/token"

type EncodeOption func(*EncState)

// UseTrueFalse renders booleans as true/false instead of yes/no.
func UseTrueFalse(v bool) EncodeOption {
	return func(es *EncState) { es.trueFalse = v }
}

// WithNaturalizer sets the grammar which rendered scalars must round trip
// through. The default is the token package's default grammar.
func WithNaturalizer(n *token.Naturalizer) EncodeOption {
	return func(es *EncState) { es.nat = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
