package toyrsa

import "math/bits"

// Modular arithmetic kernel. Everything else in the package reduces to the
// two operations in this file.

// mulMod returns (x * y) mod m through a full 128-bit intermediate product,
// so the result is exact for any m up to 2^64-1. Requires x, y < m, which
// also guarantees the high product word is < m as bits.Div64 demands.
func mulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModExp computes (base^exponent) mod modulus by binary square-and-multiply,
// taking O(log exponent) multiplications. The result is always in
// [0, modulus). Deterministic.
//
// A zero modulus is a contract violation and panics: the result would be
// mathematically undefined, and returning a sentinel would let a
// cryptographically wrong value propagate silently.
func ModExp(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		log.Error("ModExp called with zero modulus")
		panic("toyrsa: zero modulus")
	}
	result := uint64(1) % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		exponent >>= 1
		base = mulMod(base, base, modulus)
	}
	return result
}

// ModInverse computes the multiplicative inverse of a modulo m by the
// extended Euclidean algorithm, tracking only the Bézout coefficient of a.
// On success the inverse is normalized into [0, m) and the second result is
// true.
//
// It reports no inverse (0, false) when gcd(a, m) != 1 or when m is
// non-positive in the signed view the algorithm computes in. The internals
// are int64 because the intermediate coefficients go negative, so a modulus
// of 2^63 or above also reports no inverse rather than being misreduced;
// key generation absorbs that the same way it absorbs any other rejected
// pair.
func ModInverse(a, m uint64) (uint64, bool) {
	ai := int64(a)
	mi := int64(m)
	if mi <= 0 {
		return 0, false
	}

	var t, newt int64 = 0, 1
	r, newr := mi, ai
	for newr != 0 {
		quotient := r / newr
		t, newt = newt, t-quotient*newt
		r, newr = newr, r-quotient*newr
	}

	// Final remainder above 1 means a and m share a factor.
	if r > 1 {
		return 0, false
	}
	// The final coefficient magnitude is < m, so one shift normalizes it.
	if t < 0 {
		t += mi
	}
	return uint64(t), true
}

// gcd returns the greatest common divisor of a and b by Euclid's algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
