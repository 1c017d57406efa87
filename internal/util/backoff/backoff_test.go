package backoff

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFibonacci_Sequence(t *testing.T) {
	t.Parallel()
	f := New(1, 10)

	want := []int{60, 60, 120, 180, 300, 480, 600, 600, 600}
	for i, seconds := range want {
		assert.Equal(t, time.Duration(seconds)*time.Second, f.Next(), "step %d", i)
	}
}

func TestFibonacci_Reset(t *testing.T) {
	t.Parallel()
	f := New(1, 10)
	for range 5 {
		f.Next()
	}

	f.Reset()

	assert.Equal(t, time.Minute, f.Next())
	assert.Equal(t, time.Minute, f.Next())
	assert.Equal(t, 2*time.Minute, f.Next())
}

func TestNew_Bounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max int64
		first    time.Duration
		ceiling  time.Duration
	}{
		{name: "defaults for zero", min: 0, max: 0, first: time.Minute, ceiling: 10 * time.Minute},
		{name: "max below min", min: 5, max: 2, first: 5 * time.Minute, ceiling: 5 * time.Minute},
		{name: "custom", min: 2, max: 7, first: 2 * time.Minute, ceiling: 7 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := New(tt.min, tt.max)
			assert.Equal(t, tt.first, f.Next())

			var last time.Duration
			for range 20 {
				last = f.Next()
			}
			assert.Equal(t, tt.ceiling, last)
		})
	}
}

func TestForErrorCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count int
		want  time.Duration
	}{
		{0, time.Minute},
		{1, time.Minute},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{4, 3 * time.Minute},
		{5, 5 * time.Minute},
		{6, 8 * time.Minute},
		{7, 10 * time.Minute},
		{50, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("count_%d", tt.count), func(t *testing.T) {
			assert.Equal(t, tt.want, ForErrorCount(tt.count, 1, 10))
		})
	}
}

func TestTracker_FailureAndSuccess(t *testing.T) {
	t.Parallel()
	tr := NewTracker(1, 10)

	count, delay := tr.Failure("default/a")
	assert.Equal(t, 1, count)
	assert.Equal(t, time.Minute, delay)

	count, delay = tr.Failure("default/a")
	assert.Equal(t, 2, count)
	assert.Equal(t, time.Minute, delay)

	count, delay = tr.Failure("default/a")
	assert.Equal(t, 3, count)
	assert.Equal(t, 2*time.Minute, delay)

	// Other keys are independent.
	count, delay = tr.Failure("default/b")
	assert.Equal(t, 1, count)
	assert.Equal(t, time.Minute, delay)
	assert.Equal(t, 2, tr.Len())

	tr.Success("default/a")
	assert.Equal(t, 0, tr.ErrorCount("default/a"))
	assert.Equal(t, 1, tr.ErrorCount("default/b"))

	count, delay = tr.Failure("default/a")
	assert.Equal(t, 1, count)
	assert.Equal(t, time.Minute, delay)
}

func TestTracker_Concurrent(t *testing.T) {
	t.Parallel()
	tr := NewTracker(1, 10)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Failure("ns/obj")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, tr.ErrorCount("ns/obj"))
}
