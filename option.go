package dataloader

import (
	"time"
)

// Option configures a Loader.
type Option[K comparable, V any] func(*Loader[K, V])

// WithWait sets the batching window: how long the loader waits after the
// first Load before dispatching the batch. Defaults to 250µs.
func WithWait[K comparable, V any](wait time.Duration) Option[K, V] {
	return func(l *Loader[K, V]) {
		l.wait = wait
	}
}

// WithMaxBatch limits how many distinct keys are sent in one batch; a full
// batch dispatches immediately. 0 means no limit. Defaults to 100.
func WithMaxBatch[K comparable, V any](maxBatch int) Option[K, V] {
	return func(l *Loader[K, V]) {
		l.maxBatch = maxBatch
	}
}

// WithCache replaces the default unbounded in-memory cache.
func WithCache[K comparable, V any](cache Cache[K, V]) Option[K, V] {
	return func(l *Loader[K, V]) {
		l.cache = cache
	}
}

// WithNoCache disables memoization entirely, see NoCache.
func WithNoCache[K comparable, V any]() Option[K, V] {
	return func(l *Loader[K, V]) {
		l.cache = NoCache[K, V]{}
	}
}

// WithTracer installs a Tracer observing loads and batch dispatches.
func WithTracer[K comparable, V any](tracer Tracer[K, V]) Option[K, V] {
	return func(l *Loader[K, V]) {
		if tracer != nil {
			l.tracer = tracer
		}
	}
}
