// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides elementwise arithmetic and matrix products over nd
// views.
//
// Inputs are read through views, so transposed, sliced and broadcast operands
// work without copying. Results are new buffers, except for the *Assign
// functions, which write through an exclusive view.
//
// Example:
//
//	a, _ := nd.FromRows([][]float64{{1, 2}, {3, 4}})
//	v, _ := a.AsView()
//	defer v.Release()
//	sum, _ := ops.Add(v, v.Transpose()) // [[2, 5], [5, 8]]
package ops

import (
	"github.com/born-ml/ndview/internal/linalg"
	"github.com/born-ml/ndview/internal/nd"
	"github.com/born-ml/ndview/internal/ops"
	"github.com/born-ml/ndview/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// Number is a constraint for element types with arithmetic operators.
type Number = ops.Number

// Integer is a constraint for integer element types.
type Integer = ops.Integer

// Unsigned is a constraint for shift counts.
type Unsigned = ops.Unsigned

// Signed is a constraint for element types that can be negated.
type Signed = ops.Signed

// Config controls how elementwise operations split work across goroutines.
type Config = parallel.Config

// DefaultConfig returns settings using every CPU for large inputs.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential returns settings that never start goroutines.
func Sequential() Config { return parallel.Sequential() }

// Map applies fn to every element of v.
func Map[T, U any](v nd.View[T], fn func(T) U) (*nd.Buffer[U], error) {
	return ops.Map(v, fn)
}

// MapConfig is Map with explicit parallelism settings.
func MapConfig[T, U any](cfg Config, v nd.View[T], fn func(T) U) (*nd.Buffer[U], error) {
	return ops.MapConfig(cfg, v, fn)
}

// ZipMap applies fn to the corresponding elements of two views of equal shape.
func ZipMap[T, U, R any](a nd.View[T], b nd.View[U], fn func(T, U) R) (*nd.Buffer[R], error) {
	return ops.ZipMap(a, b, fn)
}

// ZipMapConfig is ZipMap with explicit parallelism settings.
func ZipMapConfig[T, U, R any](cfg Config, a nd.View[T], b nd.View[U], fn func(T, U) R) (*nd.Buffer[R], error) {
	return ops.ZipMapConfig(cfg, a, b, fn)
}

// Add returns a + b.
func Add[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.Add(a, b) }

// Sub returns a - b.
func Sub[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.Sub(a, b) }

// Mul returns a * b.
func Mul[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.Mul(a, b) }

// Div returns a / b.
func Div[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.Div(a, b) }

// Rem returns a % b.
func Rem[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.Rem(a, b) }

// Neg returns -v.
func Neg[T Signed](v nd.View[T]) (*nd.Buffer[T], error) { return ops.Neg(v) }

// Sum adds up every element of v.
func Sum[T Number](v nd.View[T]) (T, error) { return ops.Sum(v) }

// BitAnd returns a & b.
func BitAnd[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.BitAnd(a, b) }

// BitOr returns a | b.
func BitOr[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.BitOr(a, b) }

// BitXor returns a ^ b.
func BitXor[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) { return ops.BitXor(a, b) }

// Not returns ^v.
func Not[T Integer](v nd.View[T]) (*nd.Buffer[T], error) { return ops.Not(v) }

// Shl returns a << n.
func Shl[T Integer, S Unsigned](a nd.View[T], n nd.View[S]) (*nd.Buffer[T], error) {
	return ops.Shl(a, n)
}

// Shr returns a >> n.
func Shr[T Integer, S Unsigned](a nd.View[T], n nd.View[S]) (*nd.Buffer[T], error) {
	return ops.Shr(a, n)
}

// Assign copies src into dst.
func Assign[T any](dst nd.MutView[T], src nd.View[T]) error { return ops.Assign(dst, src) }

// AddAssign performs dst += src.
func AddAssign[T Number](dst nd.MutView[T], src nd.View[T]) error { return ops.AddAssign(dst, src) }

// SubAssign performs dst -= src.
func SubAssign[T Number](dst nd.MutView[T], src nd.View[T]) error { return ops.SubAssign(dst, src) }

// MulAssign performs dst *= src.
func MulAssign[T Number](dst nd.MutView[T], src nd.View[T]) error { return ops.MulAssign(dst, src) }

// DivAssign performs dst /= src.
func DivAssign[T Number](dst nd.MutView[T], src nd.View[T]) error { return ops.DivAssign(dst, src) }

// RemAssign performs dst %= src.
func RemAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error { return ops.RemAssign(dst, src) }

// AndAssign performs dst &= src.
func AndAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error { return ops.AndAssign(dst, src) }

// OrAssign performs dst |= src.
func OrAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error { return ops.OrAssign(dst, src) }

// XorAssign performs dst ^= src.
func XorAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error { return ops.XorAssign(dst, src) }

// ShlAssign performs dst <<= n.
func ShlAssign[T Integer, S Unsigned](dst nd.MutView[T], n nd.View[S]) error {
	return ops.ShlAssign(dst, n)
}

// ShrAssign performs dst >>= n.
func ShrAssign[T Integer, S Unsigned](dst nd.MutView[T], n nd.View[S]) error {
	return ops.ShrAssign(dst, n)
}

// MatrixProduct multiplies two 2-dimensional views of any numeric type.
func MatrixProduct[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ops.MatrixProduct(a, b)
}

// Matrix is a zero-copy mat.Matrix over a 2-dimensional float64 view.
type Matrix = linalg.Matrix

// AsMatrix wraps a 2-dimensional float64 view for use with gonum.
func AsMatrix(v nd.View[float64]) (Matrix, error) { return linalg.AsMatrix(v) }

// FromMatrix copies a gonum matrix into a new buffer.
func FromMatrix(m mat.Matrix) (*nd.Buffer[float64], error) { return linalg.FromMatrix(m) }

// MatMul multiplies two 2-dimensional float64 views using gonum.
func MatMul(a, b nd.View[float64]) (*nd.Buffer[float64], error) { return linalg.Product(a, b) }
