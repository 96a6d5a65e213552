// Package weierecdsa implements ECDSA signing and verification over a
// short Weierstrass elliptic curve defined on a prime finite field.
//
// It is a library, not a service: callers supply a curve (package curve),
// a generator point, and the subgroup order, and receive key-pair
// generation, signing, and verification. The arithmetic stack beneath it
// (package field for modular arithmetic, package curve for the group law)
// is exported so callers can build other curve-based protocols on the same
// foundation.
//
// This implementation favors explicit, auditable affine arithmetic over
// speed or side-channel resistance: its double-and-add scalar
// multiplication branches on secret bits and is not constant-time. It is
// intended for education and protocol prototyping, not for signing
// high-value keys in an adversarial timing environment.
package weierecdsa
