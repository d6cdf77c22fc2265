package dataloader

import (
	"context"
)

// Tracer observes loader activity. The loader itself never logs; install a
// Tracer to surface loads and batch dispatches in the embedding application.
//
// TraceLoad is called for every Load, including cache hits, while the loader
// mutex is held: implementations must not call back into the loader.
type Tracer[K comparable, V any] interface {
	TraceLoad(ctx context.Context, key K)
	TraceBatch(ctx context.Context, keys []K, results []*Result[V])
}

// NopTracer is the default Tracer, it discards everything.
type NopTracer[K comparable, V any] struct{}

func (NopTracer[K, V]) TraceLoad(context.Context, K) {}

func (NopTracer[K, V]) TraceBatch(context.Context, []K, []*Result[V]) {}
