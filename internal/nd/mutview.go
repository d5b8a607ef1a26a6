package nd

// MutView is the exclusive, read-write window onto a buffer's elements.
//
// While a MutView's borrow is live no other view of the buffer can be
// borrowed. Views derived from a MutView (by transformation or AsView) share
// its borrow and its storage; writes through any of them are visible to all.
// Like a slice, copying a MutView does not copy elements, and keeping writes
// from overlapping between copies is the caller's responsibility.
type MutView[T any] struct {
	data []T
	layout
	lease *lease
}

// AsView returns a read-only view of the same elements under the same borrow.
// The view sees writes made through m and ends the borrow when released. It
// must not be handed to another goroutine while writes through m continue.
func (m MutView[T]) AsView() View[T] {
	return View[T]{data: m.data, layout: m.layout, lease: m.lease}
}

// Shape returns a copy of the view's shape.
func (m MutView[T]) Shape() Shape {
	return m.shape.Clone()
}

// Stride returns a copy of the view's stride.
func (m MutView[T]) Stride() Stride {
	return m.stride.Clone()
}

// Offset returns the position of index (0, ..., 0) in the backing storage.
func (m MutView[T]) Offset() int {
	return m.offset
}

// NumDims returns the number of dimensions.
func (m MutView[T]) NumDims() int {
	return len(m.shape)
}

// Dim returns the length of dimension d. It panics if d is out of range.
func (m MutView[T]) Dim(d int) int {
	return m.shape[d]
}

// Size returns the number of valid indices of the view.
func (m MutView[T]) Size() int {
	return m.shape.Size()
}

// Err returns ErrReleased once the view's borrow has ended, nil before.
func (m MutView[T]) Err() error {
	return m.lease.live()
}

// Get is View.Get.
func (m MutView[T]) Get(index ...int) (T, error) {
	return m.AsView().Get(index...)
}

// At is View.At.
func (m MutView[T]) At(index ...int) T {
	return m.AsView().At(index...)
}

// GetUnchecked is View.GetUnchecked and carries the same contract.
func (m MutView[T]) GetUnchecked(index ...int) T {
	return *elem(m.data, m.location(index))
}

// Set writes value at index, with the same checks as Get.
//
// Along a broadcast dimension (see AddDimension) all indices share storage,
// so a write at one index is observed at every index of that dimension.
func (m MutView[T]) Set(value T, index ...int) error {
	if err := m.lease.live(); err != nil {
		return err
	}
	if err := CheckBounds(index, m.shape); err != nil {
		return err
	}
	m.data[m.location(index)] = value
	return nil
}

// SetUnchecked writes value at index without any checks. The contract of
// GetUnchecked applies; violating it corrupts unrelated memory.
func (m MutView[T]) SetUnchecked(value T, index ...int) {
	*elem(m.data, m.location(index)) = value
}

// Fill sets every element of the view to value.
func (m MutView[T]) Fill(value T) error {
	if err := m.lease.live(); err != nil {
		return err
	}
	for idx := range Indices(m.shape) {
		m.SetUnchecked(value, idx...)
	}
	return nil
}

// Extract is View.Extract for exclusive views.
func (m MutView[T]) Extract(d, i int) (MutView[T], error) {
	l, err := m.extract(d, i)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{data: m.data, layout: l, lease: m.lease}, nil
}

// AddDimension is View.AddDimension for exclusive views. Any length is
// allowed; the new dimension aliases its storage, see Set.
func (m MutView[T]) AddDimension(d, length int) (MutView[T], error) {
	l, err := m.addDimension(d, length)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{data: m.data, layout: l, lease: m.lease}, nil
}

// Slice is View.Slice for exclusive views.
func (m MutView[T]) Slice(bounds ...Bounds) (MutView[T], error) {
	l, err := m.slice(bounds)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{data: m.data, layout: l, lease: m.lease}, nil
}

// SliceAxis is View.SliceAxis for exclusive views.
func (m MutView[T]) SliceAxis(d int, b Bounds) (MutView[T], error) {
	l, err := m.sliceAxis(d, b)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{data: m.data, layout: l, lease: m.lease}, nil
}

// Permute is View.Permute for exclusive views.
func (m MutView[T]) Permute(order ...int) (MutView[T], error) {
	l, err := m.permute(order)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{data: m.data, layout: l, lease: m.lease}, nil
}

// Transpose is View.Transpose for exclusive views.
func (m MutView[T]) Transpose() MutView[T] {
	return MutView[T]{data: m.data, layout: m.transpose(), lease: m.lease}
}

// Release ends the exclusive borrow, after which the buffer can be borrowed
// again. Every view derived from this borrow becomes invalid.
func (m MutView[T]) Release() {
	if m.lease != nil {
		m.lease.release()
	}
}
