// Package field implements modular arithmetic over a caller-supplied prime
// p: addition, subtraction, multiplication, negation, and multiplicative
// inversion via Fermat's little theorem. Every operation takes operands in
// [0, p) and returns a result in [0, p); every step the curve package takes
// passes through here so the mod-p invariant lives in one place.
package field

import (
	"errors"
	"fmt"

	"weierecdsa/bignat"
)

// ErrPreconditionViolated marks an operand that violated its declared
// modulus, e.g. an operand >= p, or an attempt to invert zero. It indicates
// a caller bug, not a runtime condition, and is never recovered from inside
// this package.
var ErrPreconditionViolated = errors.New("field: precondition violated")

// Spec is a prime modulus p (p > 2). Operations on a Spec assume p is
// prime; InvMult is only correct under that assumption (Fermat's little
// theorem), and callers are responsible for supplying a prime modulus.
type Spec struct {
	P *bignat.BigNat
}

// New returns a field specification over the given prime p.
func New(p *bignat.BigNat) Spec {
	return Spec{P: p}
}

func (s Spec) checkOperand(c *bignat.BigNat, name string) error {
	if c.Cmp(s.P) >= 0 {
		return fmt.Errorf("%w: %s >= p", ErrPreconditionViolated, name)
	}
	return nil
}

// Add returns (c + d) mod p.
func (s Spec) Add(c, d *bignat.BigNat) (*bignat.BigNat, error) {
	if err := s.checkOperand(c, "c"); err != nil {
		return nil, err
	}
	if err := s.checkOperand(d, "d"); err != nil {
		return nil, err
	}
	return c.Add(d).Mod(s.P), nil
}

// Mult returns (c * d) mod p.
func (s Spec) Mult(c, d *bignat.BigNat) (*bignat.BigNat, error) {
	if err := s.checkOperand(c, "c"); err != nil {
		return nil, err
	}
	if err := s.checkOperand(d, "d"); err != nil {
		return nil, err
	}
	return c.Mul(d).Mod(s.P), nil
}

// Neg returns p - c for c > 0, and 0 for c = 0. The source this is ported
// from asserts strict c < p and computes p - c unconditionally, which for
// c = 0 yields p itself — outside [0, p). That case is normalized to 0 here.
func (s Spec) Neg(c *bignat.BigNat) (*bignat.BigNat, error) {
	if err := s.checkOperand(c, "c"); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return bignat.Zero(), nil
	}
	r, err := s.P.Sub(c)
	if err != nil {
		// Unreachable: checkOperand already guarantees c < p.
		return nil, fmt.Errorf("%w: %v", ErrPreconditionViolated, err)
	}
	return r, nil
}

// Sub returns (c - d) mod p, computed as Add(c, Neg(d)).
func (s Spec) Sub(c, d *bignat.BigNat) (*bignat.BigNat, error) {
	negD, err := s.Neg(d)
	if err != nil {
		return nil, err
	}
	return s.Add(c, negD)
}

// InvMult returns c^(p-2) mod p, the multiplicative inverse of c under
// Fermat's little theorem. This is only a valid inverse when p is prime and
// c != 0; inverting zero returns ErrPreconditionViolated, since 0 has no
// inverse.
func (s Spec) InvMult(c *bignat.BigNat) (*bignat.BigNat, error) {
	if err := s.checkOperand(c, "c"); err != nil {
		return nil, err
	}
	if c.IsZero() {
		return nil, fmt.Errorf("%w: cannot invert zero", ErrPreconditionViolated)
	}
	two := bignat.FromUint64(2)
	pMinus2, err := s.P.Sub(two)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus too small: %v", ErrPreconditionViolated, err)
	}
	return c.Exp(pMinus2, s.P), nil
}

// Div returns Mult(c, InvMult(d)).
func (s Spec) Div(c, d *bignat.BigNat) (*bignat.BigNat, error) {
	dInv, err := s.InvMult(d)
	if err != nil {
		return nil, err
	}
	return s.Mult(c, dInv)
}
