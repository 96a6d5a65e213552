package weierecdsa

import (
	"weierecdsa/bignat"
	"weierecdsa/curve"
)

// GroupSpec is a curve together with a distinguished generator point G and
// the prime order N of the subgroup G generates. N must be prime: InvMult
// in package field, used throughout Sign and Verify over this modulus,
// is only a correct inverse under Fermat's little theorem when the
// modulus is prime.
type GroupSpec struct {
	Curve curve.Curve
	G     curve.Point
	N     *bignat.BigNat
}

// KeyPair is a private scalar d in [1, N) and its public point Q = d·G.
type KeyPair struct {
	D *bignat.BigNat
	Q curve.Point
}

// Signature is a pair (r, s). Sign does not reject r = 0 or s = 0, so a
// signature it produces is not guaranteed to have both in [1, N) (see
// Sign's doc comment).
type Signature struct {
	R, S *bignat.BigNat
}

// RandomSource draws a uniform integer in [lo, hi) from an external
// entropy collaborator. This package never seeds or manages entropy
// itself; CryptoRandSource is the default caller-supplied implementation.
type RandomSource func(lo, hi *bignat.BigNat) (*bignat.BigNat, error)
