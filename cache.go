package dataloader

import (
	"context"
)

// Cache memoizes thunks per key for the lifetime of a Loader instance.
// Storing thunks rather than values lets in-flight keys deduplicate the same
// way resolved ones do.
//
// The Loader serializes all cache access under its own mutex, so
// implementations do not need to be safe for concurrent use.
type Cache[K comparable, V any] interface {
	Get(ctx context.Context, key K) (Thunk[V], bool)
	Set(ctx context.Context, key K, thunk Thunk[V])
	Delete(ctx context.Context, key K) bool
	Clear()
}

// inMemoryCache is the default unbounded cache.
type inMemoryCache[K comparable, V any] struct {
	thunks map[K]Thunk[V]
}

func newInMemoryCache[K comparable, V any]() *inMemoryCache[K, V] {
	return &inMemoryCache[K, V]{
		thunks: make(map[K]Thunk[V]),
	}
}

func (c *inMemoryCache[K, V]) Get(_ context.Context, key K) (Thunk[V], bool) {
	thunk, ok := c.thunks[key]
	return thunk, ok
}

func (c *inMemoryCache[K, V]) Set(_ context.Context, key K, thunk Thunk[V]) {
	c.thunks[key] = thunk
}

func (c *inMemoryCache[K, V]) Delete(_ context.Context, key K) bool {
	if _, ok := c.thunks[key]; !ok {
		return false
	}
	delete(c.thunks, key)
	return true
}

func (c *inMemoryCache[K, V]) Clear() {
	c.thunks = make(map[K]Thunk[V])
}

// NoCache disables memoization while keeping batching: every Load enqueues
// into the current batch, even for keys that resolved before.
type NoCache[K comparable, V any] struct{}

func (NoCache[K, V]) Get(context.Context, K) (Thunk[V], bool) { return nil, false }

func (NoCache[K, V]) Set(context.Context, K, Thunk[V]) {}

func (NoCache[K, V]) Delete(context.Context, K) bool { return false }

func (NoCache[K, V]) Clear() {}
