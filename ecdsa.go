package weierecdsa

import (
	"crypto/sha256"
	"fmt"

	"weierecdsa/bignat"
	"weierecdsa/curve"
	"weierecdsa/field"
)

func (gs GroupSpec) fieldN() field.Spec {
	return field.New(gs.N)
}

// GenerateKeyPair draws a private scalar d uniformly from [1, N) using rnd
// and computes the corresponding public point Q = d·G.
func (gs GroupSpec) GenerateKeyPair(rnd RandomSource) (KeyPair, error) {
	d, err := rnd(bignat.One(), gs.N)
	if err != nil {
		return KeyPair{}, fmt.Errorf("weierecdsa: drawing private key: %w", err)
	}
	q, err := gs.Curve.ScalarMult(gs.G, d)
	if err != nil {
		return KeyPair{}, fmt.Errorf("weierecdsa: computing public key: %w", err)
	}
	return KeyPair{D: d, Q: q}, nil
}

// HashToScalar reduces the SHA-256 digest of message into [1, N-1].
//
// This deliberately does not use the textbook ECDSA reduction (H mod N,
// giving h in [0, N)). It instead computes ((H mod (N-1)) + 1), matching
// the non-standard reduction used by the reference material this package
// is built from; signatures are only interoperable with implementations
// that use the same reduction.
func (gs GroupSpec) HashToScalar(message []byte) *bignat.BigNat {
	digest := sha256.Sum256(message)
	h := bignat.FromBytes(digest[:])

	nMinus1, err := gs.N.Sub(bignat.One())
	if err != nil {
		panic(fmt.Sprintf("weierecdsa: group order must be >= 1: %v", err))
	}
	return h.Mod(nMinus1).Add(bignat.One())
}

// Sign computes a signature (r, s) over the scalar h (ordinarily the
// output of HashToScalar) under private key d, using nonce k.
//
// h and d must lie in [0, N) and k in [1, N); violating that is a caller
// bug and returns ErrPreconditionViolated. If k·G resolves to Identity,
// Sign returns ErrInvalidNonce and the caller should retry with a fresh k;
// when N is the order of G, no k in [1, N) does this.
//
// Sign does not reduce r modulo N (the source this is ported from takes r
// = x_R directly, which only coincides with standard ECDSA when the field
// prime does not exceed N), and does not reject r = 0 or s = 0 the way
// standard ECDSA requires. Callers needing interoperable, fully-validated
// signatures should add that rejection above this call.
func (gs GroupSpec) Sign(h, d, k *bignat.BigNat) (Signature, error) {
	if h.Cmp(gs.N) >= 0 || d.Cmp(gs.N) >= 0 || k.Cmp(gs.N) >= 0 {
		return Signature{}, fmt.Errorf("%w: h, d, and k must be in [0, n)", ErrPreconditionViolated)
	}
	if k.IsZero() {
		return Signature{}, fmt.Errorf("%w: k must be in [1, n)", ErrPreconditionViolated)
	}

	r, err := gs.Curve.ScalarMult(gs.G, k)
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %v", ErrPreconditionViolated, err)
	}
	xR, _, ok := r.XY()
	if !ok {
		return Signature{}, ErrInvalidNonce
	}

	fn := gs.fieldN()
	dr, err := fn.Mult(d, xR)
	if err != nil {
		return Signature{}, err
	}
	sum, err := fn.Add(h, dr)
	if err != nil {
		return Signature{}, err
	}
	kInv, err := fn.InvMult(k)
	if err != nil {
		return Signature{}, err
	}
	s, err := fn.Mult(sum, kInv)
	if err != nil {
		return Signature{}, err
	}

	return Signature{R: xR, S: s}, nil
}

// Verify reports whether sig is a valid signature over h under public key
// Q. It never returns an error: a malformed signature (wrong range, s = 0,
// an r that doesn't correspond to any valid nonce) simply verifies false,
// matching the source behavior this package preserves.
func (gs GroupSpec) Verify(h *bignat.BigNat, q curve.Point, sig Signature) bool {
	fn := gs.fieldN()

	sInv, err := fn.InvMult(sig.S)
	if err != nil {
		return false
	}
	u1, err := fn.Mult(sInv, h)
	if err != nil {
		return false
	}
	u2, err := fn.Mult(sInv, sig.R)
	if err != nil {
		return false
	}
	// ScalarMult rejects a zero scalar, so a zero multiplier contributes
	// Identity to the sum instead: u1 is zero when h = 0, and u2 is zero
	// for a signature with r = 0, which Sign does not reject.
	p1, p2 := curve.Identity, curve.Identity
	if !u1.IsZero() {
		if p1, err = gs.Curve.ScalarMult(gs.G, u1); err != nil {
			return false
		}
	}
	if !u2.IsZero() {
		if p2, err = gs.Curve.ScalarMult(q, u2); err != nil {
			return false
		}
	}
	p, err := gs.Curve.Add(p1, p2)
	if err != nil {
		return false
	}

	x, _, ok := p.XY()
	if !ok {
		return false
	}
	return x.Cmp(sig.R) == 0
}
