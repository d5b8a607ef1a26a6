package nd

import "iter"

// Indices yields every index of shape in row-major order, last dimension
// fastest. The yielded slice is reused between iterations; copy it to keep it.
// A shape with a zero-length dimension yields nothing and the empty shape
// yields a single empty index.
func Indices(shape Shape) iter.Seq[[]int] {
	shape = shape.Clone()
	return func(yield func([]int) bool) {
		if shape.Size() == 0 {
			return
		}
		index := make([]int, len(shape))
		for {
			if !yield(index) {
				return
			}
			if !shape.Advance(index) {
				return
			}
		}
	}
}

// All yields each index of the view with its element, in row-major order.
// The index slice is reused between iterations.
func (v View[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for idx := range Indices(v.shape) {
			if !yield(idx, v.GetUnchecked(idx...)) {
				return
			}
		}
	}
}

// Values yields the view's elements in row-major order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Rows yields the views obtained by extracting each index along dimension 0.
// A 0-dimensional view has no rows.
func (v View[T]) Rows() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		if len(v.shape) == 0 {
			return
		}
		for i := range v.shape[0] {
			row, _ := v.Extract(0, i)
			if !yield(row) {
				return
			}
		}
	}
}

// All yields each index of the view with a pointer to its element, in
// row-major order. Along broadcast dimensions several indices yield the
// same pointer.
func (m MutView[T]) All() iter.Seq2[[]int, *T] {
	return func(yield func([]int, *T) bool) {
		for idx := range Indices(m.shape) {
			if !yield(idx, elem(m.data, m.location(idx))) {
				return
			}
		}
	}
}

// Collect copies the view's elements into a new slice in row-major order.
func Collect[T any](v View[T]) []T {
	out := make([]T, 0, v.Size())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}
