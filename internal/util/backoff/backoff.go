package backoff

import "time"

const (
	// DefaultMinMinutes is the first delay of a fresh sequence.
	DefaultMinMinutes = 1
	// DefaultMaxMinutes caps every delay of a sequence.
	DefaultMaxMinutes = 10
)

// Fibonacci is a stateful delay generator. The zero value is not usable; create
// one with New. It is not safe for concurrent use.
type Fibonacci struct {
	min, max      int64
	prev, current int64
}

// New returns a Fibonacci sequence bounded by minMinutes and maxMinutes.
// Non-positive bounds fall back to the defaults, and max is raised to min when
// it is smaller.
func New(minMinutes, maxMinutes int64) *Fibonacci {
	if minMinutes <= 0 {
		minMinutes = DefaultMinMinutes
	}
	if maxMinutes <= 0 {
		maxMinutes = DefaultMaxMinutes
	}
	if maxMinutes < minMinutes {
		maxMinutes = minMinutes
	}
	return &Fibonacci{min: minMinutes, max: maxMinutes, current: minMinutes}
}

// Next returns the current delay and advances the sequence.
func (f *Fibonacci) Next() time.Duration {
	d := time.Duration(f.current) * time.Minute
	f.prev, f.current = f.current, min(f.prev+f.current, f.max)
	return d
}

// Reset restores the initial state.
func (f *Fibonacci) Reset() {
	f.prev, f.current = 0, f.min
}

// ForErrorCount computes the delay for the given consecutive error count without
// keeping state. Counts of zero and one both map to the minimum.
func ForErrorCount(errorCount int, minMinutes, maxMinutes int64) time.Duration {
	f := New(minMinutes, maxMinutes)
	var d time.Duration
	for range max(errorCount, 1) {
		d = f.Next()
	}
	return d
}
