package cache

import (
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	store := NewStore()
	store.Set("a", 1, time.Minute)
	value, ok := store.Get("a")
	if !ok || value.(int) != 1 {
		t.Fatalf("unexpected get: %v, %v", value, ok)
	}
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore()
	store.Set("a", 1, time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewStore()
	store.Set("a", 1, 0)
	if _, ok := store.Get("a"); !ok {
		t.Fatalf("expected zero-ttl entry to persist")
	}
}

func TestStoreDeleteAndFlush(t *testing.T) {
	store := NewStore()
	store.Set("a", 1, time.Minute)
	store.Set("b", 2, time.Minute)
	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Fatalf("expected deleted entry to be gone")
	}
	store.Flush()
	if store.Len() != 0 {
		t.Fatalf("expected flush to empty the store")
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var store *Store
	store.Set("a", 1, time.Minute)
	if _, ok := store.Get("a"); ok {
		t.Fatalf("nil store should report misses")
	}
	store.Delete("a")
	store.Flush()
}
