package token

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/uxf-format/go-uxf/debug"
	"github.com/uxf-format/go-uxf/ir"
)

// Grammar identifies a version of the literal grammar.
type Grammar int

const (
	// GrammarV1 is null, yes/true, no/false, -?[0-9]+ ints, reals with a
	// fraction or exponent, ISO dates and datetimes and parenthesised hex
	// bytes.
	GrammarV1 Grammar = 1
)

func (g Grammar) String() string {
	return "v" + strconv.Itoa(int(g))
}

// Naturalizer classifies raw tokens into scalar values. It is immutable
// after New and safe for concurrent use.
type Naturalizer struct {
	grammar    Grammar
	null       string
	trueWords  []string
	falseWords []string
	bytesForms BytesForm
	log        *slog.Logger
}

type Option func(*Naturalizer)

// WithNullWord sets the word naturalized as Null.
func WithNullWord(w string) Option {
	return func(n *Naturalizer) { n.null = w }
}

// WithBoolWords replaces the words naturalized as true and false.
func WithBoolWords(trueWords, falseWords []string) Option {
	return func(n *Naturalizer) {
		n.trueWords = append([]string(nil), trueWords...)
		n.falseWords = append([]string(nil), falseWords...)
	}
}

// WithBytesForms restricts the accepted byte literal delimiters.
func WithBytesForms(f BytesForm) Option {
	return func(n *Naturalizer) { n.bytesForms = f }
}

// WithLogger logs each classification at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(n *Naturalizer) { n.log = l }
}

func New(opts ...Option) *Naturalizer {
	n := &Naturalizer{
		grammar:    GrammarV1,
		null:       "null",
		trueWords:  []string{"yes", "true"},
		falseWords: []string{"no", "false"},
		bytesForms: AllBytesForms,
	}
	if debug.Naturalize() {
		n.log = debug.Logger()
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Naturalizer) Grammar() Grammar { return n.grammar }

// TrueWord returns the preferred word for true.
func (n *Naturalizer) TrueWord() string { return first(n.trueWords, "yes") }

// FalseWord returns the preferred word for false.
func (n *Naturalizer) FalseWord() string { return first(n.falseWords, "no") }

func (n *Naturalizer) NullWord() string { return n.null }

func (n *Naturalizer) BytesForms() BytesForm { return n.bytesForms }

func first(ws []string, def string) string {
	if len(ws) == 0 {
		return def
	}
	return ws[0]
}

var defaultNaturalizer = New()

// Naturalize classifies tok with the default grammar. It never fails:
// tokens matching no literal rule become Str.
func Naturalize(tok string) ir.Value {
	v, _ := defaultNaturalizer.Classify(tok)
	return v
}

// Classify is Naturalize which also reports the rule that matched.
func Classify(tok string) (ir.Value, Rule) {
	return defaultNaturalizer.Classify(tok)
}

func (n *Naturalizer) Naturalize(tok string) ir.Value {
	v, _ := n.Classify(tok)
	return v
}

func (n *Naturalizer) Classify(tok string) (ir.Value, Rule) {
	v, r := n.classify(tok)
	if n.log != nil {
		n.log.Debug("naturalize", "token", tok, "rule", r, "value", v)
	}
	return v, r
}

func (n *Naturalizer) classify(tok string) (ir.Value, Rule) {
	if tok == n.null {
		return ir.Null(), RuleNull
	}
	for _, w := range n.trueWords {
		if tok == w {
			return ir.FromBool(true), RuleBool
		}
	}
	for _, w := range n.falseWords {
		if tok == w {
			return ir.FromBool(false), RuleBool
		}
	}
	if isInt(tok) {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err == nil {
			return ir.FromInt(i), RuleInt
		}
		// out of range
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil && !math.IsInf(f, 0) {
			return ir.FromReal(f), RuleReal
		}
		return ir.FromStr(tok), RuleStr
	}
	if isReal(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err == nil && !math.IsInf(f, 0) {
			return ir.FromReal(f), RuleReal
		}
	}
	if v, ok := parseDate(tok); ok {
		return v, RuleDate
	}
	if v, ok := parseDateTime(tok); ok {
		return v, RuleDateTime
	}
	if v, ok := n.parseBytes(tok); ok {
		return v, RuleBytes
	}
	return ir.FromStr(Unescape(tok)), RuleStr
}
