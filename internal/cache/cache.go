// Package cache provides a bounded, concurrent, content-addressed memo used to
// share legal-move sets across searches and games.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the entry bound used when none is given.
const DefaultCapacity = 500000

// Cache maps keys to values that are pure functions of the key.
//
// Reads and writes need no caller locking. The size bound is approximate:
// keys are tracked in insertion order and the oldest are evicted after an
// insert pushes the count over capacity. An eviction racing with another
// eviction or with Clear just stops trimming early. The count covers tracked
// keys, so a key Clear removed before its insert was tracked is still counted
// until trimming reaches it.
type Cache[K comparable, V any] struct {
	entries  sync.Map
	size     atomic.Int64
	capacity int

	mu    sync.Mutex
	order []K
	head  int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Entries  int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// HitRate returns hits as a fraction of lookups, 0 when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a cache holding roughly capacity entries.
// A capacity of 0 or less means DefaultCapacity.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{capacity: capacity}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.entries.Load(key); ok {
		c.hits.Add(1)
		return v.(V), true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Put stores value under key, replacing any previous value.
func (c *Cache[K, V]) Put(key K, value V) {
	if _, loaded := c.entries.Swap(key, value); !loaded {
		c.track(key)
	}
}

// ComputeIfAbsent returns the value under key, computing and storing it with
// supplier if absent. Concurrent callers may both run supplier; only the
// first stored value is kept and returned to both.
func (c *Cache[K, V]) ComputeIfAbsent(key K, supplier func() V) V {
	if v, ok := c.entries.Load(key); ok {
		c.hits.Add(1)
		return v.(V)
	}
	c.misses.Add(1)
	actual, loaded := c.entries.LoadOrStore(key, supplier())
	if !loaded {
		c.track(key)
	}
	return actual.(V)
}

// Clear removes every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Range(func(k, _ any) bool {
		c.entries.Delete(k)
		return true
	})
	c.order = nil
	c.head = 0
	c.size.Store(0)
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the approximate number of entries.
func (c *Cache[K, V]) Len() int {
	return int(c.size.Load())
}

// Capacity returns the configured entry bound.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns the current usage counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Entries:  c.Len(),
		Capacity: c.capacity,
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
	}
}

// track records a newly inserted key and trims the oldest entries.
func (c *Cache[K, V]) track(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = append(c.order, key)
	c.size.Add(1)

	for int(c.size.Load()) > c.capacity && c.head < len(c.order) {
		oldest := c.order[c.head]
		var zero K
		c.order[c.head] = zero
		c.head++
		c.size.Add(-1)
		if _, ok := c.entries.LoadAndDelete(oldest); !ok {
			break
		}
	}

	// Compact once the consumed prefix dominates the slice.
	if c.head > 1024 && c.head*2 > len(c.order) {
		c.order = append(c.order[:0:0], c.order[c.head:]...)
		c.head = 0
	}
}
