package weierecdsa

import "errors"

// ErrPreconditionViolated marks an operand out of its declared range (h, d,
// or k not in [0, n), or k = 0). It indicates a caller bug.
var ErrPreconditionViolated = errors.New("weierecdsa: precondition violated")

// ErrInvalidNonce is returned by Sign when the supplied nonce k produces
// k·G = Identity. It is recoverable: the caller should retry with a fresh
// k.
var ErrInvalidNonce = errors.New("weierecdsa: nonce produced the identity point, choose another")
