// Package cache provides a sharded LRU cache used to memoize parsed
// font faces and catalog lookups.
package cache

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount must be a power of 2 for mask-based selection.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the per-shard entry limit used when no
	// capacity is given.
	DefaultCapacity = 64
)

// Hasher computes the shard hash for a key.
type Hasher[K any] func(K) uint64

// StringHasher hashes a string key with FNV-1a.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Uint32Hasher hashes a 32-bit key with FNV-1a.
func Uint32Hasher(v uint32) uint64 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	h := fnv.New64a()
	_, _ = h.Write(b[:])
	return h.Sum64()
}

// Sharded is a thread-safe LRU cache split into shards to reduce lock
// contention. Values are stored as-is; callers must not mutate a value
// after caching it.
type Sharded[K comparable, V any] struct {
	shards   [shardCount]*shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// NewSharded creates a cache holding up to capacity entries per shard.
// A capacity of zero or less selects DefaultCapacity.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     newLRUList[K](),
		}
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value and marks it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// Set stores a value, evicting least recently used entries when the
// shard is full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(c, key, value)
}

func (s *shard[K, V]) set(c *Sharded[K, V], key K, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.lru.MoveToFront(e.node)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// A failed load caches nothing and returns the error. The load runs
// with the shard lock held so concurrent callers do not duplicate the
// work of parsing the same font.
func (c *Sharded[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value, nil
	}
	c.misses.Add(1)

	value, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	s.set(c, key, value)
	return value, nil
}

// Delete removes an entry, reporting whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, key)
	return true
}

// Clear drops every entry.
func (c *Sharded[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of cached entries.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats reports hit and miss counts since creation.
func (c *Sharded[K, V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
