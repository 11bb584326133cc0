package toyrsa

import (
	"math"
	"testing"
)

// Benchmark the modular arithmetic kernel
// Every cipher operation reduces to these two primitives, so their cost is
// the cost of the whole system.

func BenchmarkModExp(b *testing.B) {
	const bigm = uint64(math.MaxUint64) - 58
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ModExp(bigm-2, bigm-1, bigm)
	}
}

func BenchmarkModExpSmallExponent(b *testing.B) {
	key := KeyPair{P: testPrimeLow, Q: testPrimeLow2}
	n := key.Modulus()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ModExp(uint64(i), PublicExponent, n)
	}
}

func BenchmarkModInverse(b *testing.B) {
	key := KeyPair{P: testPrimeLow, Q: testPrimeLow2}
	totient := uint64(key.P-1) * uint64(key.Q-1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ModInverse(PublicExponent, totient)
	}
}

func BenchmarkGenerateKeyPair(b *testing.B) {
	gen := NewGenerator(NewCryptoRandSource())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.GenerateKeyPair(); err != nil {
			b.Fatal(err)
		}
	}
}
