// Package ptr builds pointers to values for optional fields and options.
package ptr

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// NonZero returns a pointer to v, or nil when v is the zero value.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
