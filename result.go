package dataloader

import (
	"github.com/hashicorp/go-multierror"
)

// Result holds the outcome for a single key in a batch.
type Result[V any] struct {
	Data  V
	Error error
}

// Errors returns one result per key, all failed with the same error.
// Use it when the batch function fails as a whole rather than per key.
func Errors[K comparable, V any](keys []K, err error) []*Result[V] {
	results := make([]*Result[V], len(keys))
	for i := range keys {
		results[i] = &Result[V]{
			Error: err,
		}
	}
	return results
}

// ResultMap maps an unordered bulk query result back onto the requested key
// order. keyFn extracts the key from a value; keys with no matching value
// resolve to the zero value. A non-nil err fails every key with that error.
func ResultMap[K comparable, V any](keys []K, values []V, keyFn func(V) K, err error) []*Result[V] {
	if err != nil {
		return Errors[K, V](keys, err)
	}

	valuesByKey := make(map[K]V, len(values))
	for _, value := range values {
		valuesByKey[keyFn(value)] = value
	}

	results := make([]*Result[V], len(keys))
	for i, key := range keys {
		value, ok := valuesByKey[key]
		if ok {
			results[i] = &Result[V]{Data: value}
			continue
		}
		results[i] = &Result[V]{}
	}
	return results
}

// JoinErrors collapses the per key errors returned by LoadMany into a single
// error, or nil when every key resolved.
func JoinErrors(errs []error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
