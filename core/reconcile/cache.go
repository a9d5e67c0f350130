package reconcile

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SnapshotCache is a TTL cache over a SnapshotSource. Capture snapshots are
// immutable once written by the vision pipeline, so cached reads only serve
// the read-only preview path; the transactional session close always reads
// the store directly.
type SnapshotCache struct {
	source SnapshotSource
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[int64]cachedSnapshot
	sf      singleflight.Group
}

type cachedSnapshot struct {
	items []Observation
	built time.Time
}

// NewSnapshotCache wraps source with a TTL cache. A zero or negative ttl
// disables caching and every call passes through.
func NewSnapshotCache(source SnapshotSource, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		source:  source,
		ttl:     ttl,
		entries: make(map[int64]cachedSnapshot),
	}
}

// GetItems implements SnapshotSource. Concurrent loads of the same capture id
// are collapsed via singleflight.
func (c *SnapshotCache) GetItems(ctx context.Context, captureID int64) ([]Observation, error) {
	if c.ttl <= 0 {
		return c.source.GetItems(ctx, captureID)
	}

	c.mu.RLock()
	cached, ok := c.entries[captureID]
	c.mu.RUnlock()
	if ok && time.Since(cached.built) <= c.ttl {
		return cached.items, nil
	}

	key := strconv.FormatInt(captureID, 10)
	v, err, _ := c.sf.Do(key, func() (any, error) {
		items, err := c.source.GetItems(ctx, captureID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[captureID] = cachedSnapshot{items: items, built: time.Now()}
		c.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Observation), nil
}
