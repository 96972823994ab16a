package convert

import (
	_ "crypto/sha256"

	"github.com/opencontainers/go-digest"
	"github.com/uxf-format/go-uxf/ir"
)

// Digest returns the sha256 content address of v's canonical form:
// compact JSON with map entries in key order. Identical values have the
// same digest whatever their map insertion order.
func Digest(v ir.Value) (digest.Digest, error) {
	d, err := marshalJSON(v, newOptions(Indent(""), SortKeys(true)))
	if err != nil {
		return "", err
	}
	return digest.FromBytes(d), nil
}
