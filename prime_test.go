package toyrsa

import (
	"errors"
	"testing"
)

func TestCryptoRandSourceContract(t *testing.T) {
	source := NewCryptoRandSource()
	seen := make(map[uint32]bool)
	for i := 0; i < 50; i++ {
		p := source.NextPrime()
		if err := checkPrime(p); err != nil {
			t.Fatalf("source draw %d violates contract: %v", p, err)
		}
		seen[p] = true
	}
	// 50 draws from a ~10^8-prime range colliding down to a handful would
	// mean the source is not independent between calls.
	if len(seen) < 45 {
		t.Errorf("only %d distinct primes in 50 draws", len(seen))
	}
}

func TestCheckPrime(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  error
	}{
		{"zero", 0, ErrPrimeOutOfRange},
		{"small prime below range", 65537, ErrPrimeOutOfRange},
		{"just below range", 1<<31 - 1, ErrPrimeOutOfRange},
		{"composite at range start", 1 << 31, ErrNotPrime},
		{"composite in range", 4294967295, ErrNotPrime},
		{"first prime in range", testPrimeLow, nil},
		{"last prime in range", testPrimeHigh, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkPrime(tt.value); !errors.Is(err, tt.want) {
				t.Errorf("checkPrime(%d) = %v, want %v", tt.value, err, tt.want)
			}
		})
	}
}
