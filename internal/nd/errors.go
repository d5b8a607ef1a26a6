package nd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by buffers and views. Match them with errors.Is.
var (
	// ErrIndexOutOfBounds is returned when an index is negative or not less
	// than the length of its dimension.
	ErrIndexOutOfBounds = errors.New("nd: index out of bounds")

	// ErrInvalidDimension is returned when a dimension argument is out of range,
	// a permutation is not a bijection, or the number of indices or bounds does
	// not match the number of dimensions.
	ErrInvalidDimension = errors.New("nd: invalid dimension")

	// ErrInvalidRange is returned by Slice for start > end, end > len or step < 1.
	ErrInvalidRange = errors.New("nd: invalid range")

	// ErrAllocationFailed is returned when the storage for a buffer cannot be obtained.
	ErrAllocationFailed = errors.New("nd: allocation failed")

	// ErrInvalidShape is returned for negative dimension lengths, ragged
	// literals and dimensions whose element count would overflow int.
	ErrInvalidShape = errors.New("nd: invalid shape")

	// ErrShapeMismatch is returned when two views that must agree in shape do not.
	ErrShapeMismatch = errors.New("nd: shape mismatch")

	// ErrBorrowConflict is returned when a borrow would break exclusivity:
	// an exclusive view while any other view is live, a shared view while an
	// exclusive view is live, or Free while any view is live.
	ErrBorrowConflict = errors.New("nd: borrow conflict")

	// ErrReleased is returned when using a freed buffer or a released view.
	ErrReleased = errors.New("nd: released")
)

// IndexError describes an out-of-bounds index along one dimension.
type IndexError struct {
	Dim   int // Offending dimension.
	Index int // Index requested along Dim.
	Len   int // Length of Dim.
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("nd: index %d out of bounds for dimension %d of length %d", e.Index, e.Dim, e.Len)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfBounds) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

func dimensionError(d, numDims int) error {
	return fmt.Errorf("%w: dimension %d out of range for %d dimensions", ErrInvalidDimension, d, numDims)
}

func countError(what string, got, numDims int) error {
	return fmt.Errorf("%w: got %d %s for %d dimensions", ErrInvalidDimension, got, what, numDims)
}
