package cache

import (
	"testing"
	"time"
)

func TestTTLCacheStoresAndExpires(t *testing.T) {
	c := New[string, int]()

	c.Set("a", 1, time.Minute)
	if got, ok := c.Get("a"); !ok || got != 1 {
		t.Fatalf("expected cached value 1, got %d ok=%v", got, ok)
	}

	c.Set("b", 2, -time.Millisecond)
	if got, ok := c.Get("b"); !ok || got != 2 {
		t.Fatalf("expected non-positive ttl to never expire, got %d ok=%v", got, ok)
	}

	c.Set("c", 3, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, ok := c.Get("c"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestTTLCacheDelete(t *testing.T) {
	c := New[string, string]()
	c.Set("k", "v", time.Minute)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected deleted entry to be gone")
	}
}

func TestTTLCacheNilSafe(t *testing.T) {
	var c *TTLCache[string, int]
	c.Set("k", 1, time.Minute)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected nil cache to miss")
	}
}
