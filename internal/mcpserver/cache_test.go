package mcpserver

import (
	"testing"
	"time"
)

// TestCacheSetGet은 캐시 저장과 조회를 테스트합니다.
func TestCacheSetGet(t *testing.T) {
	cache := NewCache(time.Minute)

	cache.Set("k", "v")

	data, storedAt, ok := cache.Get("k")
	if !ok {
		t.Fatal("저장한 키를 찾을 수 없습니다")
	}
	if data != "v" {
		t.Errorf("data = %v, 기대값 %q", data, "v")
	}
	if storedAt.IsZero() {
		t.Error("storedAt이 설정되어야 합니다")
	}
}

// TestCacheGet_Missing은 없는 키 조회를 테스트합니다.
func TestCacheGet_Missing(t *testing.T) {
	cache := NewCache(time.Minute)

	if _, _, ok := cache.Get("none"); ok {
		t.Error("없는 키에 ok=true를 반환하면 안됩니다")
	}
}

// TestCacheGet_Expired는 만료된 항목 조회를 테스트합니다.
func TestCacheGet_Expired(t *testing.T) {
	cache := NewCache(time.Millisecond)

	cache.Set("k", "v")
	time.Sleep(5 * time.Millisecond)

	if _, _, ok := cache.Get("k"); ok {
		t.Error("만료된 항목에 ok=true를 반환하면 안됩니다")
	}

	// GetStale은 만료된 항목도 반환합니다
	data, _, ok := cache.GetStale("k")
	if !ok {
		t.Fatal("GetStale은 만료된 항목을 반환해야 합니다")
	}
	if data != "v" {
		t.Errorf("GetStale data = %v, 기대값 %q", data, "v")
	}
}

// TestCacheLen은 항목 수 계산을 테스트합니다.
func TestCacheLen(t *testing.T) {
	cache := NewCache(time.Minute)

	if cache.Len() != 0 {
		t.Errorf("빈 캐시 Len() = %d, 기대값 0", cache.Len())
	}

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("a", 3)

	if cache.Len() != 2 {
		t.Errorf("Len() = %d, 기대값 2", cache.Len())
	}
}
