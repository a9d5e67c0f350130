package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many times each capture is loaded.
type countingSource struct {
	mu       sync.Mutex
	calls    map[int64]int
	captures map[int64][]Observation
	delay    time.Duration
}

func (s *countingSource) GetItems(_ context.Context, captureID int64) ([]Observation, error) {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[int64]int)
	}
	s.calls[captureID]++
	s.mu.Unlock()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.captures[captureID], nil
}

func TestSnapshotCache_CachesWithinTTL(t *testing.T) {
	src := &countingSource{captures: map[int64][]Observation{
		1: {{Label: "milk", Quantity: 5}},
	}}
	cache := NewSnapshotCache(src, time.Minute)

	for i := 0; i < 3; i++ {
		items, err := cache.GetItems(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []Observation{{Label: "milk", Quantity: 5}}, items)
	}

	assert.Equal(t, 1, src.calls[1])
}

func TestSnapshotCache_DisabledTTLPassesThrough(t *testing.T) {
	src := &countingSource{captures: map[int64][]Observation{1: {}}}
	cache := NewSnapshotCache(src, 0)

	for i := 0; i < 2; i++ {
		_, err := cache.GetItems(context.Background(), 1)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, src.calls[1])
}

func TestSnapshotCache_ConcurrentLoadsCollapse(t *testing.T) {
	src := &countingSource{
		captures: map[int64][]Observation{
			7: {{Label: "soda", Quantity: 2}},
		},
		delay: 50 * time.Millisecond,
	}
	cache := NewSnapshotCache(src, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetItems(context.Background(), 7)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Singleflight collapses concurrent loads; later calls hit the cache.
	assert.Equal(t, 1, src.calls[7])
}
