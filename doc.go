// Package toyrsa implements a pedagogical-scale RSA cryptosystem on
// fixed-width integers.
//
// Unlike production RSA, which works on arbitrary-precision integers
// thousands of bits wide, this package confines the entire cryptosystem to
// machine words: primes are 32-bit, moduli and ciphertexts are 64-bit, and
// plaintexts are 32-bit. The public exponent is fixed at 65537. That makes
// every operation a handful of integer instructions and keeps the whole
// number-theoretic core readable, at the cost of being trivially breakable.
// Do not protect anything with it.
//
// # Key Generation
//
// GenKey draws prime pairs from a crypto/rand backed source until it finds
// one whose totient admits the fixed public exponent:
//
//	p, q := toyrsa.GenKey()
//	key := toyrsa.KeyPair{P: p, Q: q}
//
// Applications that need an injectable prime source, retry caps, or metrics
// use Generator directly:
//
//	gen := toyrsa.NewGenerator(toyrsa.NewCryptoRandSource())
//	gen.SetMetrics(toyrsa.NewInMemoryMetrics())
//	key, err := gen.GenerateKeyPair()
//
// # Encryption and Decryption
//
// The public key is the 64-bit modulus n = p*q; the private key is the
// prime pair itself. Messages are single 32-bit integers:
//
//	ciphertext := toyrsa.Encrypt(key.Modulus(), 42)
//	plaintext := toyrsa.Decrypt(key, ciphertext)
//
// # Modular Arithmetic
//
// ModExp and ModInverse, the kernel underneath the cipher, are exported for
// direct use. ModExp widens all intermediate products to 128 bits so that
// moduli up to 2^64-1 are handled exactly, with no silent wraparound.
//
// Not implemented, deliberately: padding schemes (PKCS#1, OAEP), multi-block
// messages, key serialization, and any protection against timing side
// channels.
package toyrsa
