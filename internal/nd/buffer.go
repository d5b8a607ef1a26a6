package nd

import (
	"fmt"
	"math"
	"unsafe"
)

// Buffer owns a contiguous run of elements stored in row-major order.
//
// A Buffer is the only place storage is allocated. Its elements are reached
// through views: any number of shared views (AsView) or exactly one exclusive
// view (AsMutView) may be borrowed at a time. Borrows are leases that must be
// returned with Release before a conflicting borrow can be taken.
type Buffer[T any] struct {
	data    []T
	shape   Shape
	borrows borrowState
}

// NewWith creates a buffer of the given shape, initializing each element by
// calling init with its index. Indices are visited in row-major order and the
// index slice is reused between calls.
//
// Example:
//
//	b, _ := nd.NewWith(nd.Shape{2, 3}, func(i []int) int { return i[0]*3 + i[1] })
func NewWith[T any](shape Shape, init func(index []int) T) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	n, ok := checkedSize(shape)
	if !ok {
		return nil, fmt.Errorf("%w: shape %v overflows the element count", ErrAllocationFailed, shape)
	}
	data, err := allocate[T](n)
	if err != nil {
		return nil, fmt.Errorf("%w: shape %v", err, shape)
	}

	if n > 0 {
		index := make([]int, len(shape))
		for i := range data {
			data[i] = init(index)
			shape.Advance(index)
		}
	}

	return &Buffer[T]{data: data, shape: shape.Clone()}, nil
}

// NewFill creates a buffer of the given shape with every element set to value.
func NewFill[T any](shape Shape, value T) (*Buffer[T], error) {
	return NewWith(shape, func([]int) T { return value })
}

// NewDefault creates a buffer of the given shape with every element set to
// the zero value of T.
func NewDefault[T any](shape Shape) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n, ok := checkedSize(shape)
	if !ok {
		return nil, fmt.Errorf("%w: shape %v overflows the element count", ErrAllocationFailed, shape)
	}
	data, err := allocate[T](n)
	if err != nil {
		return nil, fmt.Errorf("%w: shape %v", err, shape)
	}
	return &Buffer[T]{data: data, shape: shape.Clone()}, nil
}

// Scalar creates a 0-dimensional buffer holding value.
func Scalar[T any](value T) *Buffer[T] {
	return &Buffer[T]{data: []T{value}, shape: Shape{}}
}

// FromSlice creates a buffer from row-major data.
// The slice is copied into the buffer's memory.
func FromSlice[T any](shape Shape, data []T) (*Buffer[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n, ok := checkedSize(shape); !ok || n != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.Size(), len(data))
	}
	next := 0
	return NewWith(shape, func([]int) T {
		next++
		return data[next-1]
	})
}

// FromRows creates a 2-dimensional buffer from a list of equally long rows.
func FromRows[T any](rows [][]T) (*Buffer[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrInvalidShape, r, len(row), cols)
		}
	}
	return NewWith(Shape{len(rows), cols}, func(index []int) T {
		return rows[index[0]][index[1]]
	})
}

// Shape returns a copy of the buffer's shape.
func (b *Buffer[T]) Shape() Shape {
	return b.shape.Clone()
}

// NumDims returns the number of dimensions.
func (b *Buffer[T]) NumDims() int {
	return len(b.shape)
}

// Len returns the number of elements owned by the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// AsView borrows a shared, read-only view over the whole buffer with the
// canonical row-major stride. The view must be released with View.Release.
// It fails with ErrBorrowConflict while an exclusive view is live.
func (b *Buffer[T]) AsView() (View[T], error) {
	if err := b.borrows.share(); err != nil {
		return View[T]{}, err
	}
	return View[T]{
		data:   b.data,
		layout: b.layout(),
		lease:  newLease(&b.borrows, false),
	}, nil
}

// AsMutView borrows the exclusive, read-write view over the whole buffer.
// It fails with ErrBorrowConflict while any other view is live.
func (b *Buffer[T]) AsMutView() (MutView[T], error) {
	if err := b.borrows.exclusive(); err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{
		data:   b.data,
		layout: b.layout(),
		lease:  newLease(&b.borrows, true),
	}, nil
}

// Free releases the buffer's storage. It fails with ErrBorrowConflict while
// any view is live; once freed, borrowing fails with ErrReleased.
// Freeing twice is a no-op.
func (b *Buffer[T]) Free() error {
	if err := b.borrows.free(); err != nil {
		return err
	}
	b.data = nil
	return nil
}

// Clone returns a new buffer holding a copy of every element.
func (b *Buffer[T]) Clone() (*Buffer[T], error) {
	v, err := b.AsView()
	if err != nil {
		return nil, err
	}
	defer v.Release()
	return &Buffer[T]{data: append([]T(nil), b.data...), shape: b.shape.Clone()}, nil
}

// String renders the buffer's elements as nested lists.
func (b *Buffer[T]) String() string {
	v, err := b.AsView()
	if err != nil {
		return fmt.Sprintf("Buffer%v<%v>", []int(b.shape), err)
	}
	defer v.Release()
	return v.String()
}

func (b *Buffer[T]) layout() layout {
	return layout{shape: b.shape.Clone(), stride: b.shape.DefaultStride()}
}

// allocate obtains storage for n elements, turning an oversized request into
// ErrAllocationFailed instead of a runtime panic.
func allocate[T any](n int) (data []T, err error) {
	var zero T
	if size := unsafe.Sizeof(zero); size > 0 && uintptr(n) > maxAlloc/size {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrAllocationFailed, n, size)
	}
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: %v", ErrAllocationFailed, r)
		}
	}()
	return make([]T, n), nil
}

// maxAlloc is the largest byte count a single allocation may request.
const maxAlloc = uintptr(math.MaxInt)
