package cache

import (
	"sync"
)

// Cache is a map guarded for concurrent use. Entries live until Update drops them.
type Cache[K comparable, V any] struct {
	entries map[K]V
	mu      sync.RWMutex
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Update replaces the value for key with the result of fn while holding the write lock.
// fn sees the current value and whether it exists. Returning keep false removes the key.
func (c *Cache[K, V]) Update(key K, fn func(current V, ok bool) (next V, keep bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.entries[key]
	next, keep := fn(current, ok)
	if !keep {
		delete(c.entries, key)
		return
	}
	c.entries[key] = next
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
