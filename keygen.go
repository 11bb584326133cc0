package toyrsa

import "time"

// Pair rejection reasons reported to the MetricsCollector.
const (
	RejectNoInverse    = "no inverse"
	RejectSmallTotient = "exponent not below totient"
	RejectGCD          = "gcd recheck failed"
)

// Generator produces RSA key pairs from an injectable PrimeSource.
// The zero value is not usable; construct with NewGenerator.
//
// A Generator holds no mutable state between calls, so a single instance is
// safe for concurrent use as long as its PrimeSource is.
type Generator struct {
	source      PrimeSource
	metrics     MetricsCollector
	maxAttempts int
}

// NewGenerator creates a Generator drawing from the given source, with the
// DefaultMaxAttempts safety valve and no metrics.
func NewGenerator(source PrimeSource) *Generator {
	return &Generator{
		source:      source,
		maxAttempts: DefaultMaxAttempts,
	}
}

// SetMetrics attaches a metrics collector. Pass nil to detach.
func (g *Generator) SetMetrics(m MetricsCollector) {
	g.metrics = m
}

// SetMaxAttempts changes the retry cap. Zero or negative means unbounded:
// termination is then probabilistic, though the expected attempt count with
// a conforming source is barely above 1.
func (g *Generator) SetMaxAttempts(n int) {
	g.maxAttempts = n
}

// GenerateKeyPair draws prime pairs until one satisfies the key invariants:
// PublicExponent is invertible modulo the totient λ = (p-1)(q-1), and
// strictly below it. Rejected pairs are discarded and redrawn transparently.
//
// Each draw is validated against the PrimeSource contract; a composite or
// out-of-range value aborts generation with a KeygenError rather than
// producing a corrupt key. ErrKeygenExhausted is returned if the attempt
// cap runs out first.
//
// Equal draws (p == q) are not rejected. Such a pair is mathematically
// broken for RSA, but at ~2^-27 probability per pair with a real source the
// loop does not check for it.
func (g *Generator) GenerateKeyPair() (KeyPair, error) {
	start := time.Now()
	for attempt := 1; g.maxAttempts <= 0 || attempt <= g.maxAttempts; attempt++ {
		p := g.source.NextPrime()
		q := g.source.NextPrime()
		if g.metrics != nil {
			g.metrics.AddPrimesDrawn(2)
		}
		if err := checkPrime(p); err != nil {
			return KeyPair{}, NewKeygenError(attempt, "draw p", err)
		}
		if err := checkPrime(q); err != nil {
			return KeyPair{}, NewKeygenError(attempt, "draw q", err)
		}

		totient := uint64(p-1) * uint64(q-1)

		if _, ok := ModInverse(PublicExponent, totient); !ok {
			g.reject(RejectNoInverse, attempt, totient)
			continue
		}
		if PublicExponent >= totient {
			g.reject(RejectSmallTotient, attempt, totient)
			continue
		}
		// Implied by the inverse existing; rechecked so a kernel bug cannot
		// leak an invalid pair.
		if gcd(PublicExponent, totient) != 1 {
			g.reject(RejectGCD, attempt, totient)
			continue
		}

		if g.metrics != nil {
			g.metrics.IncrementKeyGenerated()
			g.metrics.RecordKeygenDuration(time.Since(start))
		}
		log.Debugf("key pair accepted on attempt %d", attempt)
		return KeyPair{P: p, Q: q}, nil
	}
	return KeyPair{}, NewKeygenError(g.maxAttempts, "retry", ErrKeygenExhausted)
}

func (g *Generator) reject(reason string, attempt int, totient uint64) {
	if g.metrics != nil {
		g.metrics.IncrementPairRejected(reason)
	}
	log.Debugf("prime pair rejected on attempt %d (%s, totient=%d)", attempt, reason, totient)
}

// GenKey generates an RSA prime pair from the default crypto/rand source,
// retrying without bound until a pair is accepted. The returned primes are
// the private key; the public key is their product.
func GenKey() (uint32, uint32) {
	g := NewGenerator(NewCryptoRandSource())
	g.SetMaxAttempts(0)
	key, err := g.GenerateKeyPair()
	if err != nil {
		// Unreachable: the default source upholds the prime contract and
		// the loop is unbounded.
		log.Errorf("key generation failed with conforming source: %v", err)
		panic(err)
	}
	return key.P, key.Q
}
