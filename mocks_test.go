package toyrsa

// mocks_test.go - Shared test helpers, stubs, and constants used across
// multiple test files.

// Known primes inside [2^31, 2^32) used as fixed key material.
const (
	testPrimeLow  uint32 = 2147483659 // first prime above 2^31
	testPrimeLow2 uint32 = 2147483693
	testPrimeHigh uint32 = 4294967291 // largest 32-bit prime, 2^32 - 5

	// testPrimeDivisible is a prime with p-1 divisible by 65537, so any
	// totient built from it shares a factor with the public exponent.
	testPrimeDivisible uint32 = 2148696083
)

// stubPrimeSource replays a fixed sequence, cycling when it runs out.
// Deterministic replacement for the crypto/rand source.
type stubPrimeSource struct {
	values []uint32
	next   int
}

func (s *stubPrimeSource) NextPrime() uint32 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// mustPanic runs fn and reports whether it panicked.
func mustPanic(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	fn()
	return false
}
