package service

import (
	"testing"
	"time"
)

func TestCacheService_SetAndGet(t *testing.T) {
	cs := NewCacheService()

	cs.Set("products:all", []string{"a", "b"}, time.Minute)

	value, ok := cs.Get("products:all")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if items, ok := value.([]string); !ok || len(items) != 2 {
		t.Errorf("unexpected cached value: %v", value)
	}

	if _, ok := cs.Get("products:missing"); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService()

	cs.Set("key", "value", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := cs.Get("key"); ok {
		t.Error("expected expired entry to read as missing")
	}
}

func TestCacheService_InvalidateByPrefix(t *testing.T) {
	cs := NewCacheService()

	cs.Set("negotiations:all", 1, time.Minute)
	cs.Set("negotiations:user:42", 2, time.Minute)
	cs.Set("products:all", 3, time.Minute)

	cs.InvalidateByPrefix("negotiations:")

	if _, ok := cs.Get("negotiations:all"); ok {
		t.Error("expected negotiations:all to be invalidated")
	}
	if _, ok := cs.Get("negotiations:user:42"); ok {
		t.Error("expected negotiations:user:42 to be invalidated")
	}
	if _, ok := cs.Get("products:all"); !ok {
		t.Error("expected products:all to survive")
	}
}
