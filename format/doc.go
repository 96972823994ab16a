// Package format names the interchange formats values convert to and from.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f = format.FromSuffix("doc.json")
//
// # Related Packages
//
//   - github.com/uxf-format/go-uxf/convert - JSON and YAML interop
package format
