// Package encode renders values as text.
//
// # Usage
//
//	// Render a scalar as a token
//	tok, err := encode.Scalar(ir.FromBytes([]byte("Jo")))  // (:4A6F:)
//
//	// Use true/false rather than yes/no
//	tok, err = encode.Scalar(ir.FromBool(true), encode.UseTrueFalse(true))
//
//	// Write an outline of a whole value
//	err = encode.Tree(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Scalar is the inverse of token.Naturalize: for every renderable scalar v,
// token.Naturalize(Scalar(v)) is equal to v. Strings which would read back
// as another kind get one extra escaped character.
//
// # Related Packages
//
//   - github.com/uxf-format/go-uxf/ir - the value model
//   - github.com/uxf-format/go-uxf/token - token classification
package encode
