package nd

import "fmt"

// layout describes where a view's elements live in its backing storage:
// element idx is at offset + Offset(idx, stride).
//
// Every transformation returns a fresh layout with newly allocated shape and
// stride slices, so layouts copied between views never alias.
type layout struct {
	offset int
	shape  Shape
	stride Stride
}

func (l layout) location(index []int) int {
	return l.offset + Offset(index, l.stride)
}

// extract fixes dimension d at index i and removes it.
func (l layout) extract(d, i int) (layout, error) {
	if d < 0 || d >= len(l.shape) {
		return layout{}, dimensionError(d, len(l.shape))
	}
	if i < 0 || i >= l.shape[d] {
		return layout{}, &IndexError{Dim: d, Index: i, Len: l.shape[d]}
	}
	return layout{
		offset: l.offset + i*l.stride[d],
		shape:  removeAt(l.shape, d),
		stride: removeAt(l.stride, d),
	}, nil
}

// addDimension inserts a broadcast dimension of the given length at d.
func (l layout) addDimension(d, length int) (layout, error) {
	if d < 0 || d > len(l.shape) {
		return layout{}, dimensionError(d, len(l.shape)+1)
	}
	if length < 0 {
		return layout{}, fmt.Errorf("%w: new dimension has negative length %d", ErrInvalidShape, length)
	}
	shape := insertAt(l.shape, d, length)
	if _, ok := checkedSize(shape); !ok {
		return layout{}, fmt.Errorf("%w: adding a dimension of length %d to %v overflows the element count",
			ErrInvalidShape, length, l.shape)
	}
	return layout{
		offset: l.offset,
		shape:  shape,
		stride: insertAt(l.stride, d, 0),
	}, nil
}

// slice restricts every dimension to its bounds.
func (l layout) slice(bounds []Bounds) (layout, error) {
	if len(bounds) != len(l.shape) {
		return layout{}, countError("bounds", len(bounds), len(l.shape))
	}

	out := layout{
		offset: l.offset,
		shape:  make(Shape, len(l.shape)),
		stride: make(Stride, len(l.stride)),
	}
	for d, b := range bounds {
		start, length, step, err := b.resolve(d, l.shape[d])
		if err != nil {
			return layout{}, err
		}
		out.offset += start * l.stride[d]
		out.shape[d] = length
		out.stride[d] = l.stride[d] * step
	}
	return out, nil
}

// sliceAxis restricts dimension d and leaves the others whole.
func (l layout) sliceAxis(d int, b Bounds) (layout, error) {
	if d < 0 || d >= len(l.shape) {
		return layout{}, dimensionError(d, len(l.shape))
	}
	bounds := make([]Bounds, len(l.shape))
	for i := range bounds {
		bounds[i] = All()
	}
	bounds[d] = b
	return l.slice(bounds)
}

// permute reorders dimensions so that new dimension k is old dimension order[k].
func (l layout) permute(order []int) (layout, error) {
	n := len(l.shape)
	if len(order) != n {
		return layout{}, countError("permutation entries", len(order), n)
	}

	seen := make([]bool, n)
	out := layout{offset: l.offset, shape: make(Shape, n), stride: make(Stride, n)}
	for k, d := range order {
		if d < 0 || d >= n {
			return layout{}, dimensionError(d, n)
		}
		if seen[d] {
			return layout{}, fmt.Errorf("%w: permutation %v repeats dimension %d", ErrInvalidDimension, order, d)
		}
		seen[d] = true
		out.shape[k] = l.shape[d]
		out.stride[k] = l.stride[d]
	}
	return out, nil
}

// transpose reverses the order of the dimensions.
func (l layout) transpose() layout {
	n := len(l.shape)
	out := layout{offset: l.offset, shape: make(Shape, n), stride: make(Stride, n)}
	for k := range n {
		out.shape[k] = l.shape[n-1-k]
		out.stride[k] = l.stride[n-1-k]
	}
	return out
}

func (l layout) equal(other layout) bool {
	return l.offset == other.offset && l.shape.Equal(other.shape) && l.stride.Equal(other.stride)
}
