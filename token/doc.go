// Package token classifies raw text tokens into scalar values.
//
// [Naturalize] maps a token string, already stripped of document
// punctuation, to an [ir.Value]. Rules are tried in order and the first
// match wins:
//
//	null                      Null
//	yes true / no false       Bool
//	-?[0-9]+                  Int (no superfluous leading zero)
//	-?[0-9]+.[0-9]+e[+-]?[0-9]+  Real (fraction or exponent required)
//	2024-01-15                Date
//	2024-01-15T10:30:00+01:00 DateTime
//	(4A 6F) or (:4A6F:)       Bytes
//
// Anything else is a Str, with backslash escapes resolved by [Unescape].
// Naturalization never fails.
//
// An int which overflows int64 becomes a Real when it has a finite
// float64 value and a Str otherwise.
//
// The grammar is versioned ([GrammarV1]); [New] builds a [Naturalizer]
// with different keywords or byte forms.
package token
