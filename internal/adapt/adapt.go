package adapt

// Array maps items through adapterFn, returning nil for empty input.
func Array[T, R any](items []T, adapterFn func(T) R) (elements []R) {
	if len(items) == 0 {
		return nil
	}

	elements = make([]R, 0, len(items))
	for _, item := range items {
		elements = append(elements, adapterFn(item))
	}
	return elements
}
