package lru_test

import (
	"context"
	"testing"

	"github.com/UnAfraid/dataloader"
	"github.com/UnAfraid/dataloader/lru"
)

func constThunk(value string) dataloader.Thunk[string] {
	return func() (string, error) {
		return value, nil
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := lru.NewCache[string, string](2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	cache.Set(ctx, "a", constThunk("1"))
	cache.Set(ctx, "b", constThunk("2"))
	cache.Set(ctx, "c", constThunk("3"))

	if _, ok := cache.Get(ctx, "a"); ok {
		t.Fatal("expected oldest entry a to be evicted")
	}

	thunk, ok := cache.Get(ctx, "c")
	if !ok {
		t.Fatal("expected entry c to be present")
	}
	if value, _ := thunk(); value != "3" {
		t.Fatalf("expected 3, got %q", value)
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	cache, err := lru.NewCache[string, string](4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	cache.Set(ctx, "a", constThunk("1"))
	if !cache.Delete(ctx, "a") {
		t.Fatal("expected delete of existing entry to return true")
	}
	if cache.Delete(ctx, "a") {
		t.Fatal("expected delete of missing entry to return false")
	}

	cache.Set(ctx, "b", constThunk("2"))
	cache.Clear()
	if _, ok := cache.Get(ctx, "b"); ok {
		t.Fatal("expected cache to be empty after clear")
	}
}

func TestLoaderWithLRUCache(t *testing.T) {
	cache, err := lru.NewCache[string, string](1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := 0
	batchFn := func(_ context.Context, keys []string) []*dataloader.Result[string] {
		calls++
		results := make([]*dataloader.Result[string], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[string]{Data: key}
		}
		return results
	}
	loader := dataloader.NewBatchedLoader(batchFn, dataloader.WithCache[string, string](cache))
	ctx := context.Background()

	loader.Load(ctx, "a")
	loader.Load(ctx, "b") // evicts a
	loader.Load(ctx, "a")

	if calls != 3 {
		t.Fatalf("expected 3 batch calls after eviction, got %d", calls)
	}
}
