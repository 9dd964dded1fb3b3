package rag

import (
	"fmt"
	"testing"
)

func TestCacheKeyNormalizesAndSeparatesLanguages(t *testing.T) {
	if CacheKey("  What is JJM? ", "en") != CacheKey("what is jjm?", "en") {
		t.Error("expected case and whitespace to be normalized")
	}
	if CacheKey("what is jjm", "en") == CacheKey("what is jjm", "hi") {
		t.Error("same query in different languages must not share a key")
	}
}

func TestCacheGetPut(t *testing.T) {
	c := NewCache(3)
	key := CacheKey("query", "en")
	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.Put(key, "answer")
	if v, ok := c.Get(key); !ok || v != "answer" {
		t.Fatalf("expected cached answer, got (%q, %v)", v, ok)
	}
}

func TestCacheFIFOEviction(t *testing.T) {
	const capacity = 5
	c := NewCache(capacity)
	for i := 0; i < capacity; i++ {
		c.Put(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
	}
	// One more insert evicts the very first key, not any other.
	c.Put("extra", "ve")
	if _, ok := c.Get("k0"); ok {
		t.Error("expected the oldest key to be evicted")
	}
	for i := 1; i < capacity; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i)); !ok {
			t.Errorf("key k%d should have survived", i)
		}
	}
	if _, ok := c.Get("extra"); !ok {
		t.Error("newest key must be present")
	}
	if c.Len() != capacity {
		t.Errorf("expected len %d, got %d", capacity, c.Len())
	}
}

func TestCacheHitDoesNotRefreshOrder(t *testing.T) {
	c := NewCache(2)
	c.Put("a", "1")
	c.Put("b", "2")
	c.Get("a") // hit must not move "a" to the back
	c.Put("c", "3")
	if _, ok := c.Get("a"); ok {
		t.Error("eviction must follow insertion order, not access order")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to survive")
	}
}

func TestCacheRePutKeepsPosition(t *testing.T) {
	c := NewCache(2)
	c.Put("a", "1")
	c.Put("b", "2")
	c.Put("a", "updated")
	c.Put("c", "3")
	if v, ok := c.Get("a"); ok {
		// a kept its original slot, so it should have been evicted.
		t.Errorf("expected a evicted after re-put, still present with %q", v)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(2)
	c.Put("a", "1")
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("expected empty cache after Clear, len=%d", c.Len())
	}
}
