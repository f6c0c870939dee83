// Package cache provides the concurrent get-or-compute maps that memoize
// name resolution.
//
// Entries are never evicted and never overwritten: the values cached here are
// pure functions of their keys, so when two callers race on the same key the
// first stored value wins and the loser's identical result is discarded.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// DefaultShards is used when a non-positive shard count is requested.
const DefaultShards = 32

// Map is a string-keyed concurrent map split into independently locked shards.
type Map[V any] struct {
	shards []shard[V]

	hits   atomic.Int64
	misses atomic.Int64
}

type shard[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// Stats is a point-in-time view of a Map's counters.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// New creates a Map with the given number of shards.
func New[V any](shards int) *Map[V] {
	if shards <= 0 {
		shards = DefaultShards
	}

	m := &Map[V]{shards: make([]shard[V], shards)}
	for i := range m.shards {
		m.shards[i].entries = make(map[string]V)
	}

	return m
}

func (m *Map[V]) shardFor(key string) *shard[V] {
	return &m.shards[xxhash.Sum64String(key)%uint64(len(m.shards))]
}

// Get returns the cached value for key.
func (m *Map[V]) Get(key string) (V, bool) {
	s := m.shardFor(key)

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}

	return v, ok
}

// Store saves v under key unless a value is already present, and returns
// the value that ended up cached.
func (m *Map[V]) Store(key string, v V) V {
	s := m.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok {
		return existing
	}

	s.entries[key] = v

	return v
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs without any lock held and may run more than once for
// the same key under contention. A compute error is returned as is and
// nothing is stored.
func (m *Map[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	return m.Store(key, v), nil
}

// Len returns the number of cached entries.
func (m *Map[V]) Len() int {
	n := 0

	for i := range m.shards {
		s := &m.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}

	return n
}

// Stats returns the current counters.
func (m *Map[V]) Stats() Stats {
	return Stats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: m.Len(),
	}
}
