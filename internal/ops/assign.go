package ops

import (
	"fmt"

	"github.com/born-ml/ndview/internal/nd"
)

// Assign copies src into dst elementwise.
func Assign[T any](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(_, y T) T { return y })
}

// AddAssign performs dst += src elementwise.
func AddAssign[T Number](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x + y })
}

// SubAssign performs dst -= src elementwise.
func SubAssign[T Number](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x - y })
}

// MulAssign performs dst *= src elementwise.
func MulAssign[T Number](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x * y })
}

// DivAssign performs dst /= src elementwise.
func DivAssign[T Number](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x / y })
}

// update runs sequentially in row-major order: dst may contain broadcast
// dimensions whose indices share storage, so writes cannot be split safely.
// When dst has a broadcast dimension the last write along it wins.
func update[T, U any](dst nd.MutView[T], src nd.View[U], fn func(T, U) T) error {
	if err := live(dst.Err(), src.Err()); err != nil {
		return err
	}
	shape := dst.Shape()
	if !shape.Equal(src.Shape()) {
		return fmt.Errorf("%w: cannot assign view of shape %v to %v", nd.ErrShapeMismatch, src.Shape(), shape)
	}
	for idx := range nd.Indices(shape) {
		dst.SetUnchecked(fn(dst.GetUnchecked(idx...), src.GetUnchecked(idx...)), idx...)
	}
	return nil
}
