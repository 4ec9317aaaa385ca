// Package pick holds candidate selection helpers shared by repository backends.
package pick

import (
	"crypto/rand"
	"math/big"
)

// One returns a uniformly chosen element of src, which must not be empty.
func One[T any](src []T) T {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(src))))
	if err != nil {
		return src[0] // fallback deterministic pick
	}
	return src[idx.Int64()]
}
