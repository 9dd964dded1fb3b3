package rag

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
)

// Cache is a fixed-capacity FIFO cache of finished answers. Eviction is
// by insertion order only; hits do not refresh an entry.
type Cache struct {
	mu    sync.Mutex
	cap   int
	order []string
	items map[string]string
}

// NewCache returns a cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 100
	}
	return &Cache{
		cap:   capacity,
		items: make(map[string]string, capacity),
	}
}

// CacheKey hashes a normalized query together with the answer language so
// the same question cached in Hindi never serves an English session.
func CacheKey(query, language string) string {
	norm := strings.ToLower(strings.TrimSpace(query))
	sum := md5.Sum([]byte(norm + "_" + language))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached answer for key, if present.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	return v, ok
}

// Put stores an answer, evicting the oldest entry when full. Re-putting
// an existing key updates the value without changing its position.
func (c *Cache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[key]; exists {
		c.items[key] = value
		return
	}
	if len(c.items) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.order = append(c.order, key)
	c.items[key] = value
}

// Len returns the current number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear empties the cache. Used after a knowledge-base reload.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = nil
	c.items = make(map[string]string, c.cap)
}
