package utils

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	cache := GetCache()
	cache.Clear()

	cache.Set("k", "value", time.Minute)
	if got := cache.Get("k"); got != "value" {
		t.Errorf("Get = %v, want value", got)
	}

	if got := cache.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := GetCache()
	cache.Clear()

	cache.Set("k", "value", 20*time.Millisecond)
	if cache.Get("k") == nil {
		t.Fatal("entry should be served within its window")
	}

	time.Sleep(40 * time.Millisecond)
	if got := cache.Get("k"); got != nil {
		t.Errorf("expired entry still served: %v", got)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	cache := GetCache()
	cache.Clear()

	cache.Set("a", 1, time.Minute)
	cache.Set("b", 2, time.Minute)

	cache.Delete("a")
	if cache.Get("a") != nil {
		t.Error("deleted entry still served")
	}
	if cache.Get("b") == nil {
		t.Error("unrelated entry dropped by Delete")
	}

	cache.Clear()
	if cache.Get("b") != nil {
		t.Error("Clear left an entry behind")
	}
}

func TestIndexTTLOverride(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "3")
	if got := IndexTTL(); got != 3*time.Second {
		t.Errorf("IndexTTL = %v, want 3s", got)
	}

	t.Setenv("CACHE_TTL_SECONDS", "")
	if got := IndexTTL(); got != DefaultIndexTTL {
		t.Errorf("IndexTTL = %v, want default %v", got, DefaultIndexTTL)
	}
}
