package token

// Rule identifies the classification rule which matched a token. Rules are
// tried in declaration order and the first match wins.
type Rule int

const (
	RuleNull Rule = iota
	RuleBool
	RuleInt
	RuleReal
	RuleDate
	RuleDateTime
	RuleBytes
	RuleStr
)

func (r Rule) String() string {
	s, ok := map[Rule]string{
		RuleNull:     "null",
		RuleBool:     "bool",
		RuleInt:      "int",
		RuleReal:     "real",
		RuleDate:     "date",
		RuleDateTime: "datetime",
		RuleBytes:    "bytes",
		RuleStr:      "str",
	}[r]
	if ok {
		return s
	}
	return "<unknown rule>"
}

func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
