package backoff

import (
	"sync"
	"time"
)

// Tracker holds per-object backoff state. Entries live for the process
// lifetime only; a restart resets every sequence.
type Tracker struct {
	mu         sync.Mutex
	minMinutes int64
	maxMinutes int64
	entries    map[string]*entry
}

type entry struct {
	errorCount int
	seq        *Fibonacci
}

// NewTracker creates a Tracker whose sequences use the given bounds.
func NewTracker(minMinutes, maxMinutes int64) *Tracker {
	return &Tracker{
		minMinutes: minMinutes,
		maxMinutes: maxMinutes,
		entries:    make(map[string]*entry),
	}
}

// Failure records one more error for key and returns the new error count and
// the delay to wait before the next attempt.
func (t *Tracker) Failure(key string) (int, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		e = &entry{seq: New(t.minMinutes, t.maxMinutes)}
		t.entries[key] = e
	}
	e.errorCount++
	return e.errorCount, e.seq.Next()
}

// Success forgets the state for key.
func (t *Tracker) Success(key string) {
	t.mu.Lock()
	delete(t.entries, key)
	t.mu.Unlock()
}

// ErrorCount returns the consecutive error count recorded for key.
func (t *Tracker) ErrorCount(key string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[key]; ok {
		return e.errorCount
	}
	return 0
}

// Len returns the number of objects currently backing off.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
