package toyrsa

import "math"

// Encrypt encrypts a 32-bit message under the public modulus n, returning
// the ciphertext msg^e mod n.
//
// The caller is responsible for msg < n. Any modulus built from two primes
// in [2^31, 2^32) is at least 2^62, so every 32-bit message satisfies this
// by construction; the precondition only matters for hand-built moduli.
func Encrypt(n uint64, msg uint32) uint64 {
	return ModExp(uint64(msg), PublicExponent, n)
}

// Decrypt recovers the plaintext from a ciphertext produced under key's
// modulus. The private exponent d is rederived from the totient on every
// call; it is never stored.
//
// Two conditions panic, both upstream contract violations that a key pair
// from GenKey or Generator can never trigger: the private exponent not
// existing (the pair was never valid), and a recovered plaintext wider than
// 32 bits (the ciphertext was not produced by Encrypt under this key).
func Decrypt(key KeyPair, ciphertext uint64) uint32 {
	d, ok := ModInverse(PublicExponent, key.totient())
	if !ok {
		log.Errorf("no private exponent for key pair (p=%d, q=%d); pair violates generation invariants", key.P, key.Q)
		panic("toyrsa: invalid key pair")
	}
	msg := ModExp(ciphertext, d, key.Modulus())
	if msg > math.MaxUint32 {
		log.Errorf("decrypted value %d exceeds the 32-bit message domain", msg)
		panic("toyrsa: plaintext exceeds 32 bits")
	}
	return uint32(msg)
}
