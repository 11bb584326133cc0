package toyrsa

// KeyPair is an RSA private key: two independently drawn primes from
// [2^31, 2^32). The corresponding public key is Modulus() together with the
// fixed PublicExponent. Immutable once generated; key material never leaves
// memory in any serialized form.
type KeyPair struct {
	P, Q uint32
}

// Modulus returns the public modulus n = p*q. With 32-bit primes the
// product always fits a uint64.
func (k KeyPair) Modulus() uint64 {
	return uint64(k.P) * uint64(k.Q)
}

// totient returns λ = (p-1)(q-1). Recomputed on every use, never cached;
// it exists only transiently during generation and decryption.
func (k KeyPair) totient() uint64 {
	return uint64(k.P-1) * uint64(k.Q-1)
}
