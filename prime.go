package toyrsa

import (
	"crypto/rand"
	"math/big"
)

// PrimeSource supplies the raw prime material consumed by key generation.
// The generator treats it as a black box; the only contract is that every
// returned value is prime and lies in [2^31, 2^32), and that repeated calls
// are independent enough to make distinct pairs likely.
//
// Implementations must be safe for concurrent use if the generator is
// shared across goroutines.
type PrimeSource interface {
	NextPrime() uint32
}

// primalityRounds is the Miller-Rabin round count used when validating
// source output. For 32-bit candidates the test is exact well below this.
const primalityRounds = 20

// cryptoRandSource draws primes from crypto/rand. Stateless, so trivially
// safe for concurrent use.
type cryptoRandSource struct{}

// NewCryptoRandSource returns the default PrimeSource, backed by the
// operating system's CSPRNG via crypto/rand.
func NewCryptoRandSource() PrimeSource {
	return cryptoRandSource{}
}

func (cryptoRandSource) NextPrime() uint32 {
	p, err := rand.Prime(rand.Reader, PrimeBits)
	if err != nil {
		// rand.Prime only fails when the system randomness source does;
		// nothing sensible can continue without one.
		log.Errorf("system randomness source failed: %v", err)
		panic("toyrsa: randomness source unavailable")
	}
	return uint32(p.Uint64())
}

// checkPrime validates a source draw against the PrimeSource contract.
// Range is checked before primality so an obviously out-of-contract value
// is reported as such even when it also happens to be composite.
func checkPrime(p uint32) error {
	if p < MinPrime {
		return ErrPrimeOutOfRange
	}
	if !new(big.Int).SetUint64(uint64(p)).ProbablyPrime(primalityRounds) {
		return ErrNotPrime
	}
	return nil
}
