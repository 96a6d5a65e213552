// Package bignat implements the arbitrary-precision unsigned integer type
// that every arithmetic layer above it is built from: field elements,
// scalars, and curve coordinates are all BigNat values. No package above
// bignat performs raw integer arithmetic; every sum, product, difference,
// or exponentiation passes through here so that the non-negative invariant
// is centralized in one place.
package bignat

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNegativeResult is returned by Sub when the minuend is smaller than the
// subtrahend, which would otherwise produce a negative BigNat.
var ErrNegativeResult = errors.New("bignat: subtrahend exceeds minuend")

// BigNat is a non-negative arbitrary-precision integer.
type BigNat struct {
	v *big.Int
}

// Zero is the additive identity.
func Zero() *BigNat { return &BigNat{v: new(big.Int)} }

// One is the multiplicative identity.
func One() *BigNat { return FromUint64(1) }

// FromUint64 builds a BigNat from a small unsigned value.
func FromUint64(n uint64) *BigNat {
	return &BigNat{v: new(big.Int).SetUint64(n)}
}

// FromBytes interprets b as a big-endian non-negative integer.
func FromBytes(b []byte) *BigNat {
	return &BigNat{v: new(big.Int).SetBytes(b)}
}

// FromHex parses s (with or without a "0x" prefix, either letter case) as a
// hexadecimal non-negative integer.
func FromHex(s string) (*BigNat, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("bignat: invalid hex string %q", s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("bignat: negative hex string %q", s)
	}
	return &BigNat{v: n}, nil
}

// Bytes renders n as big-endian bytes with no leading zero byte (the zero
// value renders as a single 0x00 byte).
func (n *BigNat) Bytes() []byte {
	if n.v.Sign() == 0 {
		return []byte{0}
	}
	return n.v.Bytes()
}

// Hex renders n as canonical lowercase hexadecimal, no "0x" prefix.
func (n *BigNat) Hex() string {
	return n.v.Text(16)
}

// Cmp returns -1, 0, or +1 as n is less than, equal to, or greater than m.
func (n *BigNat) Cmp(m *BigNat) int {
	return n.v.Cmp(m.v)
}

// IsZero reports whether n is zero.
func (n *BigNat) IsZero() bool { return n.v.Sign() == 0 }

// Add returns n + m.
func (n *BigNat) Add(m *BigNat) *BigNat {
	return &BigNat{v: new(big.Int).Add(n.v, m.v)}
}

// Sub returns n - m. The caller must ensure n >= m; ErrNegativeResult is
// returned otherwise rather than silently producing a negative value.
func (n *BigNat) Sub(m *BigNat) (*BigNat, error) {
	if n.v.Cmp(m.v) < 0 {
		return nil, ErrNegativeResult
	}
	return &BigNat{v: new(big.Int).Sub(n.v, m.v)}, nil
}

// Mul returns n * m.
func (n *BigNat) Mul(m *BigNat) *BigNat {
	return &BigNat{v: new(big.Int).Mul(n.v, m.v)}
}

// Mod returns n mod m.
func (n *BigNat) Mod(m *BigNat) *BigNat {
	return &BigNat{v: new(big.Int).Mod(n.v, m.v)}
}

// Exp returns base^exp mod m via modular exponentiation.
func (n *BigNat) Exp(exp, m *BigNat) *BigNat {
	return &BigNat{v: new(big.Int).Exp(n.v, exp.v, m.v)}
}

// BitLen returns the number of bits required to represent n; BitLen of zero
// is 0.
func (n *BigNat) BitLen() int {
	return n.v.BitLen()
}

// Bit returns bit i of n, indexed from the least significant bit (bit 0).
func (n *BigNat) Bit(i int) uint {
	return n.v.Bit(i)
}

// String renders n in base 10, for logging and test failure messages.
func (n *BigNat) String() string {
	return n.v.String()
}

// Big exposes the underlying value for callers at the system boundary
// (e.g. encoding/serialization code outside this module) that need a
// *big.Int. The returned value must not be mutated.
func (n *BigNat) Big() *big.Int {
	return n.v
}
