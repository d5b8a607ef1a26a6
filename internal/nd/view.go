package nd

import "unsafe"

// View is a shared, read-only window onto a buffer's elements, described by a
// base offset, a shape and a stride. Views are small values: copying one is
// cheap and every copy reads the same storage.
//
// Transformations (Extract, AddDimension, Slice, Permute, Transpose) return new
// views over the same elements in O(N) time for N dimensions and never copy
// elements. A failing transformation leaves its receiver untouched.
//
// A View is valid until Release is called on it or on any view derived from
// the same borrow. Many views may read the same storage concurrently.
type View[T any] struct {
	data []T
	layout
	lease *lease
}

// Shape returns a copy of the view's shape.
func (v View[T]) Shape() Shape {
	return v.shape.Clone()
}

// Stride returns a copy of the view's stride.
func (v View[T]) Stride() Stride {
	return v.stride.Clone()
}

// Offset returns the position of index (0, ..., 0) in the backing storage.
func (v View[T]) Offset() int {
	return v.offset
}

// NumDims returns the number of dimensions.
func (v View[T]) NumDims() int {
	return len(v.shape)
}

// Dim returns the length of dimension d. It panics if d is out of range.
func (v View[T]) Dim(d int) int {
	return v.shape[d]
}

// Size returns the number of valid indices of the view.
func (v View[T]) Size() int {
	return v.shape.Size()
}

// Err returns ErrReleased once the view's borrow has ended, nil before.
func (v View[T]) Err() error {
	return v.lease.live()
}

// Get returns the element at index. It fails with an *IndexError if any
// index is out of bounds, ErrInvalidDimension if the number of indices does
// not match NumDims, and ErrReleased after Release.
func (v View[T]) Get(index ...int) (T, error) {
	var zero T
	if err := v.lease.live(); err != nil {
		return zero, err
	}
	if err := CheckBounds(index, v.shape); err != nil {
		return zero, err
	}
	return v.data[v.location(index)], nil
}

// At returns the element at index, panicking where Get would fail.
//
// Example:
//
//	v.At(1, 2) // Row 1, column 2
func (v View[T]) At(index ...int) T {
	x, err := v.Get(index...)
	if err != nil {
		panic(err)
	}
	return x
}

// GetUnchecked returns the element at index without any checks.
//
// The caller must guarantee that len(index) == NumDims, that
// 0 <= index[d] < Dim(d) for every d, and that the view has not been
// released. Violating this reads arbitrary memory. Never pass indices derived
// from untrusted input without checking them with CheckBounds first.
func (v View[T]) GetUnchecked(index ...int) T {
	return *elem(v.data, v.location(index))
}

// Extract fixes dimension d at index i, returning a view with one dimension
// fewer. It selects the same elements as slicing [i, i+1) along d and
// dropping that dimension.
func (v View[T]) Extract(d, i int) (View[T], error) {
	l, err := v.extract(d, i)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, layout: l, lease: v.lease}, nil
}

// AddDimension inserts a dimension of the given length at position d with
// stride 0. Every index along the new dimension addresses the original view,
// so no elements are materialized. It fails with ErrInvalidShape if length is
// negative or the resulting element count would overflow int.
func (v View[T]) AddDimension(d, length int) (View[T], error) {
	l, err := v.addDimension(d, length)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, layout: l, lease: v.lease}, nil
}

// Slice restricts each dimension to its bounds, one Bounds per dimension.
// Use All() to leave a dimension whole.
//
// Example:
//
//	v.Slice(nd.All(), nd.All().Step(2)) // every other column
func (v View[T]) Slice(bounds ...Bounds) (View[T], error) {
	l, err := v.slice(bounds)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, layout: l, lease: v.lease}, nil
}

// SliceAxis restricts dimension d to b and leaves the other dimensions whole.
func (v View[T]) SliceAxis(d int, b Bounds) (View[T], error) {
	l, err := v.sliceAxis(d, b)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, layout: l, lease: v.lease}, nil
}

// Permute reorders the dimensions: dimension k of the result is dimension
// order[k] of v. The order must be a permutation of 0..NumDims-1.
func (v View[T]) Permute(order ...int) (View[T], error) {
	l, err := v.permute(order)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{data: v.data, layout: l, lease: v.lease}, nil
}

// Transpose reverses the dimensions, so what was at index (a, ..., z) is at
// (z, ..., a). For a 2-dimensional view this is the matrix transpose.
func (v View[T]) Transpose() View[T] {
	return View[T]{data: v.data, layout: v.transpose(), lease: v.lease}
}

// SameLayout reports whether v and other address the same storage with the
// same base offset, shape and stride.
func (v View[T]) SameLayout(other View[T]) bool {
	return v.lease != nil && other.lease != nil &&
		v.lease.owner == other.lease.owner && v.layout.equal(other.layout)
}

// Release ends the borrow this view belongs to. Every view derived from the
// same AsView call becomes invalid. Releasing again is a no-op.
func (v View[T]) Release() {
	if v.lease != nil {
		v.lease.release()
	}
}

// elem returns a pointer to data[off] without a bounds check.
func elem[T any](data []T, off int) *T {
	var zero T
	//nolint:gosec // unchecked by contract, callers establish the bounds
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(data)), off*int(unsafe.Sizeof(zero))))
}
