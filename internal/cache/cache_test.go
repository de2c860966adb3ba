package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	if _, ok := c.Get("missing"); ok {
		t.Fatal("hit on empty cache")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Fatalf("overwrite: Get(a) = %d", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestGetOrLoad(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 42 {
			t.Fatalf("GetOrLoad = %d, %v", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("load called %d times, want 1", calls)
	}

	fail := errors.New("parse failed")
	if _, err := c.GetOrLoad("bad", func() (int, error) { return 0, fail }); err != fail {
		t.Fatalf("failed load: got %v", err)
	}
	// Failures are not cached.
	if _, ok := c.Get("bad"); ok {
		t.Fatal("failed load was cached")
	}
}

func TestEviction(t *testing.T) {
	// One entry per shard; the second insert into a shard evicts the first.
	c := NewSharded[string, int](1, StringHasher)
	keys := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		k := fmt.Sprintf("key-%d", i)
		keys = append(keys, k)
		c.Set(k, i)
	}
	if c.Len() > 16 {
		t.Fatalf("Len = %d, want at most one per shard", c.Len())
	}
	hits := 0
	for _, k := range keys {
		if _, ok := c.Get(k); ok {
			hits++
		}
	}
	if hits == 64 {
		t.Fatal("nothing was evicted")
	}
}

func TestDeleteClear(t *testing.T) {
	c := NewSharded[string, int](8, StringHasher)
	c.Set("a", 1)
	if !c.Delete("a") {
		t.Fatal("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Fatal("double Delete(a) = true")
	}
	c.Set("b", 2)
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len after Clear = %d", c.Len())
	}
}

func TestConcurrent(t *testing.T) {
	c := NewSharded[string, int](32, StringHasher)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := fmt.Sprintf("key-%d", i%50)
				if _, err := c.GetOrLoad(k, func() (int, error) { return i, nil }); err != nil {
					t.Errorf("GetOrLoad: %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	hits, misses := c.Stats()
	if hits == 0 || misses == 0 {
		t.Fatalf("stats: hits=%d misses=%d", hits, misses)
	}
}

func TestUint32Hasher(t *testing.T) {
	if Uint32Hasher(1) == Uint32Hasher(2) {
		t.Fatal("adjacent keys hash identically")
	}
	c := NewSharded[uint32, int](4, Uint32Hasher)
	for i := uint32(0); i < 100; i++ {
		c.Set(i, int(i))
	}
	// The newest key in its shard survives eviction.
	if v, ok := c.Get(99); !ok || v != 99 {
		t.Fatalf("Get(99) = %d, %v", v, ok)
	}
}
