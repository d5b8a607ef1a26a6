package ops

import (
	"fmt"

	"github.com/born-ml/ndview/internal/nd"
	"github.com/born-ml/ndview/internal/parallel"
)

// MatrixProduct multiplies an (l0, k) matrix by a (k, l1) matrix, producing
// an (l0, l1) buffer whose element (i, j) is the sum over k of a[i,k]*b[k,j].
//
// Either operand may be a transposed or strided view.
func MatrixProduct[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	if err := live(a.Err(), b.Err()); err != nil {
		return nil, err
	}
	if a.NumDims() != 2 || b.NumDims() != 2 {
		return nil, fmt.Errorf("%w: matrix product needs 2 dimensions, got %d and %d",
			nd.ErrInvalidDimension, a.NumDims(), b.NumDims())
	}
	inner := a.Dim(1)
	if inner != b.Dim(0) {
		return nil, fmt.Errorf("%w: cannot multiply matrices of %v and %v", nd.ErrShapeMismatch, a.Shape(), b.Shape())
	}

	return generate(parallel.DefaultConfig(), nd.Shape{a.Dim(0), b.Dim(1)}, func(idx []int) T {
		var sum T
		for k := range inner {
			sum += a.GetUnchecked(idx[0], k) * b.GetUnchecked(k, idx[1])
		}
		return sum
	})
}
