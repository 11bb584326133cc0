package toyrsa

import (
	"errors"
	"fmt"
)

// Error taxonomy
//
// Only prime-source contract violations and retry exhaustion surface as
// errors. Absence of a modular inverse is an ordinary outcome reported by
// ModInverse's bool result and handled by retrying, never an error. The
// remaining failure modes (zero modulus, plaintext wider than 32 bits,
// decrypting with a key no conforming generator could have produced) are
// programming-contract violations and panic instead.

var (
	// ErrPrimeOutOfRange indicates a prime source returned a value below
	// 2^31. Every source must confine its output to [2^31, 2^32).
	ErrPrimeOutOfRange = errors.New("toyrsa: prime source value outside [2^31, 2^32)")

	// ErrNotPrime indicates a prime source returned a composite number.
	ErrNotPrime = errors.New("toyrsa: prime source value is composite")

	// ErrKeygenExhausted indicates the generator's attempt cap was reached
	// without finding an acceptable prime pair. With a conforming source
	// this is effectively unreachable; seeing it means the source is
	// feeding the generator degenerate primes.
	ErrKeygenExhausted = errors.New("toyrsa: key generation attempts exhausted")
)

// KeygenError wraps a key generation failure with the attempt on which it
// occurred. It supports errors.Is/errors.As through Unwrap.
type KeygenError struct {
	Attempt int    // 1-based attempt number
	Op      string // what the generator was doing (e.g. "draw p")
	Err     error  // underlying cause
}

func (e *KeygenError) Error() string {
	return fmt.Sprintf("toyrsa: keygen attempt %d: %s: %v", e.Attempt, e.Op, e.Err)
}

func (e *KeygenError) Unwrap() error {
	return e.Err
}

// NewKeygenError creates a KeygenError for the given attempt and operation.
func NewKeygenError(attempt int, op string, err error) error {
	return &KeygenError{
		Attempt: attempt,
		Op:      op,
		Err:     err,
	}
}
