// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nd provides zero-copy views over N-dimensional arrays.
//
// A Buffer owns contiguous row-major storage. Views borrow it:
//   - View[T]: shared, read-only; any number may be live at once
//   - MutView[T]: exclusive, read-write; no other view may be live
//
// Views are reshaped without copying through Extract, AddDimension, Slice,
// Permute and Transpose. Every view derived from a borrow shares it, and a
// single Release ends the borrow for all of them.
//
// Example:
//
//	b, _ := nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	v, _ := b.AsView()
//	defer v.Release()
//	col, _ := v.Transpose().Extract(0, 1) // [2, 5]
package nd

import (
	"iter"

	"github.com/born-ml/ndview/internal/nd"
)

// Shape is the length of each dimension.
type Shape = nd.Shape

// Stride is the element advance of each dimension.
type Stride = nd.Stride

// Buffer owns the elements of an N-dimensional array.
type Buffer[T any] = nd.Buffer[T]

// View is a shared, read-only view of a buffer.
type View[T any] = nd.View[T]

// MutView is an exclusive, read-write view of a buffer.
type MutView[T any] = nd.MutView[T]

// Bounds selects a strided range of one dimension for Slice.
type Bounds = nd.Bounds

// IndexError reports which index was out of bounds.
type IndexError = nd.IndexError

// Errors.
var (
	ErrIndexOutOfBounds = nd.ErrIndexOutOfBounds
	ErrInvalidDimension = nd.ErrInvalidDimension
	ErrInvalidRange     = nd.ErrInvalidRange
	ErrAllocationFailed = nd.ErrAllocationFailed
	ErrInvalidShape     = nd.ErrInvalidShape
	ErrShapeMismatch    = nd.ErrShapeMismatch
	ErrBorrowConflict   = nd.ErrBorrowConflict
	ErrReleased         = nd.ErrReleased
)

// NewWith allocates a buffer and initializes each element with init(index),
// visiting indices in row-major order.
func NewWith[T any](shape Shape, init func(index []int) T) (*Buffer[T], error) {
	return nd.NewWith(shape, init)
}

// NewFill allocates a buffer with every element set to value.
func NewFill[T any](shape Shape, value T) (*Buffer[T], error) {
	return nd.NewFill(shape, value)
}

// NewDefault allocates a buffer of zero values.
func NewDefault[T any](shape Shape) (*Buffer[T], error) {
	return nd.NewDefault[T](shape)
}

// Scalar returns a 0-dimensional buffer holding value.
func Scalar[T any](value T) *Buffer[T] {
	return nd.Scalar(value)
}

// FromSlice copies data, laid out row-major, into a buffer of the given shape.
func FromSlice[T any](shape Shape, data []T) (*Buffer[T], error) {
	return nd.FromSlice(shape, data)
}

// FromRows copies a rectangular 2-dimensional slice into a buffer.
func FromRows[T any](rows [][]T) (*Buffer[T], error) {
	return nd.FromRows(rows)
}

// All selects a whole dimension.
func All() Bounds { return nd.All() }

// Range selects [start, end) of a dimension.
func Range(start, end int) Bounds { return nd.Range(start, end) }

// Offset returns the storage offset of index under stride.
func Offset(index []int, stride Stride) int {
	return nd.Offset(index, stride)
}

// CheckBounds validates index against shape.
func CheckBounds(index []int, shape Shape) error {
	return nd.CheckBounds(index, shape)
}

// Indices yields every index of shape in row-major order.
// The yielded slice is reused between iterations.
func Indices(shape Shape) iter.Seq[[]int] {
	return nd.Indices(shape)
}

// Collect copies the elements of v into a new slice in row-major order.
func Collect[T any](v View[T]) []T {
	return nd.Collect(v)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b View[T]) bool {
	return nd.Equal(a, b)
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a View[T], b View[U], eq func(T, U) bool) bool {
	return nd.EqualFunc(a, b, eq)
}
