package convert

import "github.com/uxf-format/go-uxf/token"

type Option func(*options)

type options struct {
	indent string
	sorted bool
	nat    *token.Naturalizer
}

func newOptions(opts ...Option) *options {
	o := &options{indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	if o.nat == nil {
		o.nat = token.New()
	}
	return o
}

// Indent sets the JSON indentation; "" writes compact JSON.
func Indent(s string) Option {
	return func(o *options) { o.indent = s }
}

// SortKeys writes map entries in key order instead of insertion order.
func SortKeys(v bool) Option {
	return func(o *options) { o.sorted = v }
}

// WithNaturalizer sets the grammar used to read numbers, dates and
// datetimes.
func WithNaturalizer(n *token.Naturalizer) Option {
	return func(o *options) { o.nat = n }
}
