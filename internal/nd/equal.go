package nd

// Equal reports whether a and b have the same shape and equal elements at
// every index. Strides and storage may differ.
func Equal[T comparable](a, b View[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a View[T], b View[U], eq func(T, U) bool) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for idx := range Indices(a.shape) {
		if !eq(a.GetUnchecked(idx...), b.GetUnchecked(idx...)) {
			return false
		}
	}
	return true
}
