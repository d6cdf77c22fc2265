package api

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/dataloader"
)

// logTracer surfaces loader activity on the application logger.
type logTracer[K comparable, V any] struct {
	logger logrus.FieldLogger
}

func newLogTracer[K comparable, V any](name string) *logTracer[K, V] {
	return &logTracer[K, V]{
		logger: logrus.WithField("loader", name),
	}
}

func (t *logTracer[K, V]) TraceLoad(_ context.Context, key K) {
	t.logger.WithField("key", key).Trace("dataloader load")
}

func (t *logTracer[K, V]) TraceBatch(_ context.Context, keys []K, results []*dataloader.Result[V]) {
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
	}
	t.logger.
		WithField("keys", len(keys)).
		WithField("failed", failed).
		Debug("dataloader batch dispatched")
}
