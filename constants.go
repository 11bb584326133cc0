package toyrsa

// PublicExponent is the fixed RSA public exponent e. It is prime, which is
// what makes the key generation retry loop terminate quickly: a candidate
// pair is only rejected when the totient happens to be divisible by it.
// Never configurable; changing it would invalidate every key this package
// has ever produced.
const PublicExponent uint64 = 65537

// Prime range contract shared by every PrimeSource implementation.
const (
	// PrimeBits is the exact bit length of generated primes.
	PrimeBits = 32

	// MinPrime is the lower bound of the prime range [2^31, 2^32).
	// The upper bound is implicit in the uint32 type.
	MinPrime uint32 = 1 << 31
)

// DefaultMaxAttempts is the generator's default retry cap. It is a safety
// valve against a broken prime source, not a correctness requirement: with
// a conforming source the expected attempt count is barely above 1, so a
// four-digit cap is unreachable in practice.
const DefaultMaxAttempts = 10000
