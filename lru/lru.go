// Package lru provides a bounded dataloader.Cache backed by
// hashicorp/golang-lru, for loaders that outlive a single request.
package lru

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/UnAfraid/dataloader"
)

// Cache is a fixed size LRU cache of thunks.
type Cache[K comparable, V any] struct {
	cache *lru.Cache[K, dataloader.Thunk[V]]
}

// NewCache creates a Cache holding at most size entries.
func NewCache[K comparable, V any](size int) (*Cache[K, V], error) {
	cache, err := lru.New[K, dataloader.Thunk[V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		cache: cache,
	}, nil
}

func (c *Cache[K, V]) Get(_ context.Context, key K) (dataloader.Thunk[V], bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Set(_ context.Context, key K, thunk dataloader.Thunk[V]) {
	c.cache.Add(key, thunk)
}

func (c *Cache[K, V]) Delete(_ context.Context, key K) bool {
	return c.cache.Remove(key)
}

func (c *Cache[K, V]) Clear() {
	c.cache.Purge()
}
