package mem

import (
	"sync"
	"time"
)

// TTLCache is a small in-process cache for values that are expensive
// or rate-limited to refetch, like the KRW/TWD rate and AI day
// suggestions. Expired entries are overwritten lazily; there is no
// background janitor.
type TTLCache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func NewTTLCache[V any]() *TTLCache[V] {
	return &TTLCache[V]{data: make(map[string]entry[V])}
}

func (c *TTLCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry[V]{value: value, expiresAt: time.Now().Add(ttl)}
}

func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.data[key]
	if !ok || time.Now().After(it.expiresAt) {
		var zero V
		return zero, false
	}
	return it.value, true
}

func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}
