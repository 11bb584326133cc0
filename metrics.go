package toyrsa

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector receives key generation events. It lets applications
// plug in custom metrics backends (Prometheus, StatsD, plain logging) to
// watch retry behavior in production.
//
// All methods must be safe for concurrent use and should be non-blocking.
type MetricsCollector interface {
	// AddPrimesDrawn adds to the running count of primes drawn from the
	// source. Called once per attempt with the pair size.
	AddPrimesDrawn(n int)

	// IncrementPairRejected increments the rejection counter for a reason,
	// one of the Reject* constants.
	IncrementPairRejected(reason string)

	// IncrementKeyGenerated increments the count of accepted key pairs.
	IncrementKeyGenerated()

	// RecordKeygenDuration records the full duration of one
	// GenerateKeyPair call, retries included.
	RecordKeygenDuration(d time.Duration)
}

// InMemoryMetrics provides a simple in-memory implementation of
// MetricsCollector. Suitable for development, testing, and applications
// that want basic visibility without external dependencies.
//
// All operations are thread-safe using atomic operations and minimal
// locking.
type InMemoryMetrics struct {
	primesDrawn   uint64
	keysGenerated uint64

	// Rejection counters by reason (map protected by mutex)
	rejectsMu    sync.RWMutex
	rejectsByWhy map[string]uint64

	// Duration tracking (protected by mutex for min/max updates)
	durationMu sync.RWMutex
	duration   durationStats
}

// durationStats accumulates keygen call durations.
type durationStats struct {
	count      uint64
	totalNanos uint64
	minNanos   uint64
	maxNanos   uint64
}

// NewInMemoryMetrics creates a new in-memory metrics collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		rejectsByWhy: make(map[string]uint64),
	}
}

// AddPrimesDrawn adds to the primes-drawn counter.
func (m *InMemoryMetrics) AddPrimesDrawn(n int) {
	atomic.AddUint64(&m.primesDrawn, uint64(n))
}

// IncrementPairRejected increments the rejection counter for the reason.
func (m *InMemoryMetrics) IncrementPairRejected(reason string) {
	m.rejectsMu.Lock()
	m.rejectsByWhy[reason]++
	m.rejectsMu.Unlock()
}

// IncrementKeyGenerated increments the accepted key pair counter.
func (m *InMemoryMetrics) IncrementKeyGenerated() {
	atomic.AddUint64(&m.keysGenerated, 1)
}

// RecordKeygenDuration records one GenerateKeyPair duration.
func (m *InMemoryMetrics) RecordKeygenDuration(d time.Duration) {
	nanos := uint64(d.Nanoseconds())

	m.durationMu.Lock()
	defer m.durationMu.Unlock()

	if m.duration.count == 0 {
		m.duration.minNanos = nanos
		m.duration.maxNanos = nanos
	}
	m.duration.count++
	m.duration.totalNanos += nanos

	if nanos < m.duration.minNanos {
		m.duration.minNanos = nanos
	}
	if nanos > m.duration.maxNanos {
		m.duration.maxNanos = nanos
	}
}

// Getter methods for programmatic access to metrics

// PrimesDrawn returns the total count of primes drawn from the source.
func (m *InMemoryMetrics) PrimesDrawn() uint64 {
	return atomic.LoadUint64(&m.primesDrawn)
}

// KeysGenerated returns the total count of accepted key pairs.
func (m *InMemoryMetrics) KeysGenerated() uint64 {
	return atomic.LoadUint64(&m.keysGenerated)
}

// PairsRejected returns the rejection count for one reason.
func (m *InMemoryMetrics) PairsRejected(reason string) uint64 {
	m.rejectsMu.RLock()
	defer m.rejectsMu.RUnlock()
	return m.rejectsByWhy[reason]
}

// AllRejections returns a copy of all rejection counts by reason.
func (m *InMemoryMetrics) AllRejections() map[string]uint64 {
	m.rejectsMu.RLock()
	defer m.rejectsMu.RUnlock()

	result := make(map[string]uint64, len(m.rejectsByWhy))
	for k, v := range m.rejectsByWhy {
		result[k] = v
	}
	return result
}

// AvgKeygenDuration returns the average GenerateKeyPair duration.
// Returns 0 if no calls have been recorded.
func (m *InMemoryMetrics) AvgKeygenDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()

	if m.duration.count == 0 {
		return 0
	}
	return time.Duration(m.duration.totalNanos / m.duration.count)
}

// MinKeygenDuration returns the shortest recorded GenerateKeyPair duration.
func (m *InMemoryMetrics) MinKeygenDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()
	return time.Duration(m.duration.minNanos)
}

// MaxKeygenDuration returns the longest recorded GenerateKeyPair duration.
func (m *InMemoryMetrics) MaxKeygenDuration() time.Duration {
	m.durationMu.RLock()
	defer m.durationMu.RUnlock()
	return time.Duration(m.duration.maxNanos)
}

// Reset clears all metrics. Useful for testing.
func (m *InMemoryMetrics) Reset() {
	atomic.StoreUint64(&m.primesDrawn, 0)
	atomic.StoreUint64(&m.keysGenerated, 0)

	m.rejectsMu.Lock()
	m.rejectsByWhy = make(map[string]uint64)
	m.rejectsMu.Unlock()

	m.durationMu.Lock()
	m.duration = durationStats{}
	m.durationMu.Unlock()
}
