package cache

import (
    "sync"
    "time"
)

// entry stores one cached payload with the time it was written.
type entry[V any] struct {
    storedAt time.Time
    payload  V
}

// Store caches payloads per key for a TTL.
//
// Expiry is lazy: an expired entry is shadowed on Get but stays in memory
// until it is overwritten by Put or removed by Delete. The working set is a
// handful of ticker symbols, so unreclaimed expired entries are acceptable.
type Store[V any] struct {
    ttl time.Duration
    now func() time.Time

    mu    sync.RWMutex
    items map[string]entry[V]
}

// New builds a Store with the given TTL. A non-positive TTL means every
// Get misses.
func New[V any](ttl time.Duration) *Store[V] {
    return &Store[V]{ttl: ttl, now: time.Now, items: make(map[string]entry[V])}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Store[V] {
    s := New[V](ttl)
    s.now = now
    return s
}

// Get returns the payload for key if it exists and has not expired.
func (s *Store[V]) Get(key string) (V, bool) {
    s.mu.RLock()
    e, ok := s.items[key]
    s.mu.RUnlock()
    if !ok || s.now().Sub(e.storedAt) >= s.ttl {
        var zero V
        return zero, false
    }
    return e.payload, true
}

// Put stores the payload under key, replacing any prior entry.
func (s *Store[V]) Put(key string, payload V) {
    s.mu.Lock()
    s.items[key] = entry[V]{storedAt: s.now(), payload: payload}
    s.mu.Unlock()
}

// Delete removes the entry for key if present.
func (s *Store[V]) Delete(key string) {
    s.mu.Lock()
    delete(s.items, key)
    s.mu.Unlock()
}
