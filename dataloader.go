package dataloader

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	defaultWait     = 250 * time.Microsecond
	defaultMaxBatch = 100
)

// BatchFunc resolves a batch of distinct keys in one call.
// The returned slice must contain exactly one result per key,
// where position i corresponds to keys[i].
type BatchFunc[K comparable, V any] func(ctx context.Context, keys []K) []*Result[V]

// Thunk is a deferred result for a single key. Calling it blocks until the
// batch containing the key has been dispatched and resolved.
type Thunk[V any] func() (V, error)

// ThunkMany is a deferred result for a list of keys, one value and one error
// slot per requested key.
type ThunkMany[V any] func() ([]V, []error)

// Loader batches and caches lookups against a single BatchFunc.
//
// A Loader is safe for concurrent use, but its cache is scoped to the
// instance: create one Loader per logical unit of work (typically one
// incoming request) so cached data cannot leak between unrelated scopes.
type Loader[K comparable, V any] struct {
	batchFn  BatchFunc[K, V]
	wait     time.Duration
	maxBatch int
	cache    Cache[K, V]
	tracer   Tracer[K, V]

	mu    sync.Mutex
	batch *batch[K, V]
}

// NewBatchedLoader creates a Loader for the given batch function.
// Panics if batchFn is nil.
func NewBatchedLoader[K comparable, V any](batchFn BatchFunc[K, V], options ...Option[K, V]) *Loader[K, V] {
	if batchFn == nil {
		panic("dataloader: batch function is nil")
	}
	loader := &Loader[K, V]{
		batchFn:  batchFn,
		wait:     defaultWait,
		maxBatch: defaultMaxBatch,
		tracer:   NopTracer[K, V]{},
	}
	for _, option := range options {
		option(loader)
	}
	if loader.cache == nil {
		loader.cache = newInMemoryCache[K, V]()
	}
	return loader
}

// Load fetches the value for key, batching and caching transparently.
// It blocks until the batch containing key has been resolved.
func (l *Loader[K, V]) Load(ctx context.Context, key K) (V, error) {
	return l.LoadThunk(ctx, key)()
}

// LoadThunk enqueues key and returns a thunk that blocks only when called.
// Use it to request keys from several loaders before waiting on any of them.
func (l *Loader[K, V]) LoadThunk(ctx context.Context, key K) Thunk[V] {
	l.mu.Lock()
	l.tracer.TraceLoad(ctx, key)

	if thunk, ok := l.cache.Get(ctx, key); ok {
		l.mu.Unlock()
		return thunk
	}

	if l.batch == nil {
		l.batch = &batch[K, V]{
			ctx:  ctx,
			done: make(chan struct{}),
		}
	}
	currentBatch := l.batch
	pos := currentBatch.keyIndex(l, key)

	thunk := func() (V, error) {
		<-currentBatch.done
		result := currentBatch.results[pos]
		return result.Data, result.Error
	}
	l.cache.Set(ctx, key, thunk)
	l.mu.Unlock()

	return thunk
}

// LoadMany fetches the values for all keys. Duplicate keys are allowed and
// resolve independently from the shared cached or batched entry. The returned
// slices always have one entry per requested key, in request order.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) ([]V, []error) {
	return l.LoadManyThunk(ctx, keys)()
}

// LoadManyThunk is the deferred form of LoadMany.
func (l *Loader[K, V]) LoadManyThunk(ctx context.Context, keys []K) ThunkMany[V] {
	thunks := make([]Thunk[V], len(keys))
	for i, key := range keys {
		thunks[i] = l.LoadThunk(ctx, key)
	}
	return func() ([]V, []error) {
		values := make([]V, len(thunks))
		errors := make([]error, len(thunks))
		for i, thunk := range thunks {
			values[i], errors[i] = thunk()
		}
		return values, errors
	}
}

// Prime seeds the cache with a known value without dispatching a batch,
// for example with the result of a create mutation. If the key is already
// cached no change is made and false is returned; to overwrite, Clear the
// key first.
func (l *Loader[K, V]) Prime(ctx context.Context, key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.cache.Get(ctx, key); ok {
		return false
	}
	l.cache.Set(ctx, key, func() (V, error) {
		return value, nil
	})
	return true
}

// Clear removes key from the cache. A batch already dispatched with that key
// still resolves for callers holding its thunk; the next Load for the key
// starts a fresh batch entry.
func (l *Loader[K, V]) Clear(ctx context.Context, key K) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Delete(ctx, key)
}

// ClearAll empties the cache entirely. Use after bulk mutations.
func (l *Loader[K, V]) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.Clear()
}

// batch accumulates the distinct keys requested since the last dispatch.
type batch[K comparable, V any] struct {
	ctx     context.Context
	keys    []K
	results []*Result[V]
	done    chan struct{}
	closing bool
}

// keyIndex returns the position of key in the batch, appending it if it is
// not queued yet. Must be called with the loader mutex held.
func (b *batch[K, V]) keyIndex(l *Loader[K, V], key K) int {
	for i, existingKey := range b.keys {
		if key == existingKey {
			return i
		}
	}

	pos := len(b.keys)
	b.keys = append(b.keys, key)
	if pos == 0 {
		go b.startTimer(l)
	}

	if l.maxBatch != 0 && pos >= l.maxBatch-1 {
		if !b.closing {
			b.closing = true
			l.batch = nil
			go b.dispatch(l)
		}
	}

	return pos
}

func (b *batch[K, V]) startTimer(l *Loader[K, V]) {
	time.Sleep(l.wait)
	l.mu.Lock()

	// the batch already filled up and was dispatched early
	if b.closing {
		l.mu.Unlock()
		return
	}

	l.batch = nil
	l.mu.Unlock()

	b.dispatch(l)
}

func (b *batch[K, V]) dispatch(l *Loader[K, V]) {
	b.results = b.fetch(l)
	l.tracer.TraceBatch(b.ctx, b.keys, b.results)
	close(b.done)
}

// fetch invokes the batch function and guards its contract: a panic or a
// result count that does not match the key count fails every key in the
// batch rather than mis-mapping positions.
func (b *batch[K, V]) fetch(l *Loader[K, V]) (results []*Result[V]) {
	defer func() {
		if r := recover(); r != nil {
			results = Errors[K, V](b.keys, fmt.Errorf("dataloader: batch function panicked: %v", r))
		}
	}()

	results = l.batchFn(b.ctx, b.keys)

	if len(results) != len(b.keys) {
		return Errors[K, V](b.keys, fmt.Errorf("dataloader: batch function returned %d results for %d keys", len(results), len(b.keys)))
	}

	for i, result := range results {
		if result == nil {
			results[i] = &Result[V]{}
		}
	}
	return results
}
