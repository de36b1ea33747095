package cache

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestCache(t *testing.T, cfg Config) *Cache {
	t.Helper()
	c := New(cfg)
	t.Cleanup(c.Close)
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t, DefaultConfig())

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() found a missing key")
	}

	c.Set("a", 1)
	val, ok := c.Get("a")
	if !ok || val != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", val, ok)
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v; want 1, 1, 50", hits, misses, rate)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}
}

func TestCache_Expiration(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Millisecond, CleanupInterval: time.Hour})

	c.Set("short", "v")
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry was returned")
	}
	if c.Size() != 0 {
		t.Error("expired entry was not removed on Get")
	}
}

func TestCache_CleanupLoop(t *testing.T) {
	c := newTestCache(t, Config{TTL: time.Millisecond, CleanupInterval: 5 * time.Millisecond})

	c.Set("short", "v")
	deadline := time.Now().Add(time.Second)
	for c.Size() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if c.Size() != 0 {
		t.Error("cleanup loop did not remove the expired entry")
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	c := newTestCache(t, Config{MaxItems: 2})

	c.Set("first", 1)
	time.Sleep(time.Millisecond)
	c.Set("second", 2)
	time.Sleep(time.Millisecond)
	c.Set("first", 10) // overwrite does not evict
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}

	c.Set("third", 3)
	if _, ok := c.Get("second"); ok {
		t.Error("oldest entry was not evicted")
	}
	if _, ok := c.Get("first"); !ok {
		t.Error("rewritten entry was evicted")
	}
	if _, ok := c.Get("third"); !ok {
		t.Error("new entry missing")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := newTestCache(t, DefaultConfig())
	calls := 0
	fn := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		val, err := c.GetOrSet("k", fn)
		if err != nil || val != "value" {
			t.Fatalf("GetOrSet() = %v, %v", val, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrSet("bad", func() (interface{}, error) { return nil, boom }); err != boom {
		t.Errorf("GetOrSet() error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation was cached")
	}
}

func TestCache_Close(t *testing.T) {
	c := newTestCache(t, DefaultConfig())
	c.Set("a", 1)
	c.Close()
	if _, ok := c.Get("a"); !ok {
		t.Error("cache is not usable after Close")
	}
	c.Close() // idempotent
}

func TestSourceKey(t *testing.T) {
	a := SourceKey("strict", "def one() 1 end")
	b := SourceKey("strict", "def one() 1 end")
	c := SourceKey("legacy", "def one() 1 end")
	d := SourceKey("strict", "def two() 2 end")

	if a != b {
		t.Error("SourceKey() is not deterministic")
	}
	if a == c || a == d {
		t.Error("SourceKey() collides across scope or source")
	}
	if !strings.HasPrefix(a, "strict:") || len(a) != len("strict:")+64 {
		t.Errorf("SourceKey() = %q", a)
	}
}
