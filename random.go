package weierecdsa

import (
	"crypto/rand"
	"fmt"
	"io"

	"weierecdsa/bignat"
)

// CryptoRandSource returns a RandomSource backed by r, suitable for
// production use when r is a cryptographically secure reader (the zero
// value uses crypto/rand.Reader). It rejection-samples: it draws
// byte-aligned candidates the width of hi and discards any outside
// [lo, hi), the same strategy threshold-network-roast-go's SampleFq uses
// against its own field modulus.
func CryptoRandSource(r io.Reader) RandomSource {
	if r == nil {
		r = rand.Reader
	}
	return func(lo, hi *bignat.BigNat) (*bignat.BigNat, error) {
		if hi.Cmp(lo) <= 0 {
			return nil, fmt.Errorf("%w: empty range [%s, %s)", ErrPreconditionViolated, lo, hi)
		}
		width := (hi.BitLen() + 7) / 8
		buf := make([]byte, width)
		for {
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("weierecdsa: reading randomness: %w", err)
			}
			cand := bignat.FromBytes(buf)
			if cand.Cmp(lo) >= 0 && cand.Cmp(hi) < 0 {
				return cand, nil
			}
		}
	}
}
