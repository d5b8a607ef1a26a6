// Package linalg connects 2-dimensional float64 views to gonum's mat package.
package linalg

import (
	"fmt"

	"github.com/born-ml/ndview/internal/nd"
	"gonum.org/v1/gonum/mat"
)

// Matrix adapts a 2-dimensional float64 view to mat.Matrix without copying.
// Its methods read the view directly, so it is valid only while the view's
// borrow is live.
type Matrix struct {
	v nd.View[float64]
}

var _ mat.Matrix = Matrix{}

// AsMatrix wraps v, which must have exactly 2 dimensions.
func AsMatrix(v nd.View[float64]) (Matrix, error) {
	if err := v.Err(); err != nil {
		return Matrix{}, err
	}
	if v.NumDims() != 2 {
		return Matrix{}, fmt.Errorf("%w: matrix needs 2 dimensions, got %d", nd.ErrInvalidDimension, v.NumDims())
	}
	return Matrix{v: v}, nil
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (r, c int) {
	return m.v.Dim(0), m.v.Dim(1)
}

// At returns the element at row i, column j.
// It panics with mat.ErrIndexOutOfRange for an invalid index.
func (m Matrix) At(i, j int) float64 {
	x, err := m.v.Get(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return x
}

// T returns the transpose as another zero-copy Matrix.
func (m Matrix) T() mat.Matrix {
	return Matrix{v: m.v.Transpose()}
}

// View returns the wrapped view.
func (m Matrix) View() nd.View[float64] {
	return m.v
}

// FromMatrix copies m into a new (rows, cols) buffer.
func FromMatrix(m mat.Matrix) (*nd.Buffer[float64], error) {
	r, c := m.Dims()
	return nd.NewWith(nd.Shape{r, c}, func(idx []int) float64 {
		return m.At(idx[0], idx[1])
	})
}

// Product returns the matrix product a·b computed by mat.Dense.Mul.
// It fails with nd.ErrShapeMismatch if the inner dimensions differ.
func Product(a, b nd.View[float64]) (*nd.Buffer[float64], error) {
	am, err := AsMatrix(a)
	if err != nil {
		return nil, err
	}
	bm, err := AsMatrix(b)
	if err != nil {
		return nil, err
	}

	ar, ac := am.Dims()
	br, bc := bm.Dims()
	if ac != br {
		return nil, fmt.Errorf("%w: cannot multiply matrices of %v and %v", nd.ErrShapeMismatch, a.Shape(), b.Shape())
	}
	// mat.Dense rejects zero-sized matrices.
	if ar == 0 || bc == 0 || ac == 0 {
		return nd.NewDefault[float64](nd.Shape{ar, bc})
	}

	var out mat.Dense
	out.Mul(am, bm)
	return FromMatrix(&out)
}
