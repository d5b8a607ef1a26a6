package nd

import (
	"fmt"
	"math"
	"slices"
)

// Shape represents the length of each dimension of an array.
// Index values along dimension d range over [0, shape[d]).
type Shape []int

// Stride holds, for each dimension, the number of elements to skip in the
// backing storage to advance that dimension's index by one.
// A stride of 0 marks a broadcast dimension.
type Stride []int

// Size returns the number of elements addressed by the shape.
// The empty shape addresses a single scalar.
func (s Shape) Size() int {
	n := 1
	for _, l := range s {
		n *= l
	}
	return n
}

// NumDims returns the number of dimensions.
func (s Shape) NumDims() int {
	return len(s)
}

// Validate checks that no dimension has a negative length.
// Zero-length dimensions are valid and describe an empty array.
func (s Shape) Validate() error {
	for d, l := range s {
		if l < 0 {
			return fmt.Errorf("%w: dimension %d has negative length %d", ErrInvalidShape, d, l)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same lengths in the same order.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy that shares no memory with s. A nil shape clones to
// the empty, non-nil shape.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// DefaultStride calculates the row-major stride for the shape:
// the last dimension has stride 1 and each preceding dimension's stride is the
// next dimension's stride times the next dimension's length.
func (s Shape) DefaultStride() Stride {
	stride := make(Stride, len(s))
	next := 1
	for d := len(s) - 1; d >= 0; d-- {
		stride[d] = next
		next *= s[d]
	}
	return stride
}

// Unravel converts a flat row-major position into an index.
// The result is only meaningful for 0 <= flat < s.Size().
func (s Shape) Unravel(flat int) []int {
	index := make([]int, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		if s[d] == 0 {
			return index
		}
		index[d] = flat % s[d]
		flat /= s[d]
	}
	return index
}

// Advance moves index to its row-major successor in place, incrementing the
// last dimension first. It returns false once the index wraps back to zero.
func (s Shape) Advance(index []int) bool {
	for d := len(s) - 1; d >= 0; d-- {
		index[d]++
		if index[d] < s[d] {
			return true
		}
		index[d] = 0
	}
	return false
}

// Clone is Shape.Clone for strides.
func (st Stride) Clone() Stride {
	return append(Stride{}, st...)
}

// Equal is Shape.Equal for strides.
func (st Stride) Equal(other Stride) bool {
	return slices.Equal(st, other)
}

// Offset returns the flat offset of index under stride: sum of index[d]*stride[d].
// No bounds checking is done.
func Offset(index []int, stride Stride) int {
	off := 0
	for d, i := range index {
		off += i * stride[d]
	}
	return off
}

// CheckBounds reports whether index is valid for shape. It returns an
// *IndexError naming the first offending dimension, or ErrInvalidDimension if
// the number of indices differs from the number of dimensions.
func CheckBounds(index []int, shape Shape) error {
	if len(index) != len(shape) {
		return countError("indices", len(index), len(shape))
	}
	for d, i := range index {
		if i < 0 || i >= shape[d] {
			return &IndexError{Dim: d, Index: i, Len: shape[d]}
		}
	}
	return nil
}

// checkedSize is Size with overflow detection.
func checkedSize(s Shape) (int, bool) {
	for _, l := range s {
		if l == 0 {
			return 0, true
		}
	}
	n := 1
	for _, l := range s {
		if n > math.MaxInt/l {
			return 0, false
		}
		n *= l
	}
	return n, true
}

func insertAt(v []int, d, value int) []int {
	out := make([]int, 0, len(v)+1)
	out = append(out, v[:d]...)
	out = append(out, value)
	return append(out, v[d:]...)
}

func removeAt(v []int, d int) []int {
	out := make([]int, 0, len(v)-1)
	out = append(out, v[:d]...)
	return append(out, v[d+1:]...)
}
