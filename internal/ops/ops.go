package ops

import (
	"fmt"

	"github.com/born-ml/ndview/internal/nd"
	"github.com/born-ml/ndview/internal/parallel"
)

// Number is a constraint for element types with arithmetic operators.
type Number interface {
	Integer | ~float32 | ~float64
}

// Integer is a constraint for integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Unsigned is a constraint for unsigned integer element types, used for
// shift counts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is a constraint for element types that can be negated.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Map applies fn to every element of v, producing a buffer of v's shape.
func Map[T, U any](v nd.View[T], fn func(T) U) (*nd.Buffer[U], error) {
	return MapConfig(parallel.DefaultConfig(), v, fn)
}

// MapConfig is Map with explicit parallelism settings.
// fn may be called from several goroutines at once.
func MapConfig[T, U any](cfg parallel.Config, v nd.View[T], fn func(T) U) (*nd.Buffer[U], error) {
	if err := v.Err(); err != nil {
		return nil, err
	}
	return generate(cfg, v.Shape(), func(idx []int) U {
		return fn(v.GetUnchecked(idx...))
	})
}

// ZipMap applies fn to the corresponding elements of a and b.
// It fails with nd.ErrShapeMismatch unless both views have the same shape;
// use AddDimension to broadcast a smaller operand first.
func ZipMap[T, U, R any](a nd.View[T], b nd.View[U], fn func(T, U) R) (*nd.Buffer[R], error) {
	return ZipMapConfig(parallel.DefaultConfig(), a, b, fn)
}

// ZipMapConfig is ZipMap with explicit parallelism settings.
func ZipMapConfig[T, U, R any](cfg parallel.Config, a nd.View[T], b nd.View[U], fn func(T, U) R) (*nd.Buffer[R], error) {
	if err := live(a.Err(), b.Err()); err != nil {
		return nil, err
	}
	shape := a.Shape()
	if !shape.Equal(b.Shape()) {
		return nil, fmt.Errorf("%w: cannot operate on views of shape %v and %v", nd.ErrShapeMismatch, shape, b.Shape())
	}
	return generate(cfg, shape, func(idx []int) R {
		return fn(a.GetUnchecked(idx...), b.GetUnchecked(idx...))
	})
}

// Add returns a + b elementwise.
func Add[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Integer division by zero panics.
func Div[T Number](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x / y })
}

// Rem returns a % b elementwise. Division by zero panics.
func Rem[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x % y })
}

// Neg returns -v elementwise.
func Neg[T Signed](v nd.View[T]) (*nd.Buffer[T], error) {
	return Map(v, func(x T) T { return -x })
}

// Sum returns the sum of all elements of v, zero for an empty view.
func Sum[T Number](v nd.View[T]) (T, error) {
	var sum T
	if err := v.Err(); err != nil {
		return sum, err
	}
	for x := range v.Values() {
		sum += x
	}
	return sum, nil
}

// generate allocates a buffer of shape and fills it with fn(index),
// splitting the row-major positions into chunks run by cfg.
func generate[R any](cfg parallel.Config, shape nd.Shape, fn func(idx []int) R) (*nd.Buffer[R], error) {
	out, err := nd.NewDefault[R](shape)
	if err != nil {
		return nil, err
	}
	dst, err := out.AsMutView()
	if err != nil {
		return nil, err
	}
	defer dst.Release()

	// Each chunk writes a disjoint range of the fresh, contiguous output.
	parallel.Chunks(shape.Size(), func(lo, hi int) {
		idx := shape.Unravel(lo)
		for range hi - lo {
			dst.SetUnchecked(fn(idx), idx...)
			shape.Advance(idx)
		}
	}, cfg)
	return out, nil
}

func live(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
