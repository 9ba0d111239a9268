package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is a TTL-bounded in-memory cache for serialized triage responses.
type Memory struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewMemory creates a memory cache. Entries older than their TTL are
// evicted on the cleanup interval.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{
		store:      gocache.New(defaultTTL, cleanupInterval),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a cached response body.
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.store.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a response body. A zero ttl uses the cache default.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = m.defaultTTL
	}
	m.store.Set(key, value, ttl)
	return nil
}

// Delete removes one entry.
func (m *Memory) Delete(key string) error {
	m.store.Delete(key)
	return nil
}

// Clear removes all entries.
func (m *Memory) Clear() error {
	m.store.Flush()
	return nil
}
