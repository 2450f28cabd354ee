package pkg

// Option applies a configuration option to a value of type T and returns the
// modified value.
type Option[T any] func(T) T

// Apply applies each option to v in order and returns the result.
func Apply[T any](v T, opts ...Option[T]) T {
	for _, opt := range opts {
		v = opt(v)
	}

	return v
}
