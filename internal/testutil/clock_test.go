package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClockSequence(t *testing.T) {
	clock := NewDeterministicClock()
	assert.Equal(t, int64(0), clock.Current())

	for want := int64(1); want <= 4; want++ {
		assert.Equal(t, want, clock.Next())
	}
	assert.Equal(t, int64(4), clock.Current())

	clock.Reset()
	assert.Equal(t, int64(0), clock.Current())
	assert.Equal(t, int64(1), clock.Next())
}

func TestDeterministicClockConcurrent(t *testing.T) {
	clock := NewDeterministicClock()
	const workers, calls = 50, 40

	var (
		mu   sync.Mutex
		seen = make(map[int64]bool, workers*calls)
		wg   sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				n := clock.Next()
				mu.Lock()
				assert.False(t, seen[n], "duplicate value %d", n)
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*calls)
	assert.Equal(t, int64(workers*calls), clock.Current())
}
