package nd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// borrow returns a shared view of rows and releases it when the test ends.
func borrow[T any](t *testing.T, rows [][]T) View[T] {
	t.Helper()
	b, err := FromRows(rows)
	require.NoError(t, err)
	v, err := b.AsView()
	require.NoError(t, err)
	t.Cleanup(v.Release)
	return v
}

func borrowSlice[T any](t *testing.T, shape Shape, data []T) View[T] {
	t.Helper()
	b, err := FromSlice(shape, data)
	require.NoError(t, err)
	v, err := b.AsView()
	require.NoError(t, err)
	t.Cleanup(v.Release)
	return v
}

func TestViewBasic(t *testing.T) {
	v := borrow(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	assert.Equal(t, Shape{3, 3}, v.Shape())
	assert.Equal(t, Stride{3, 1}, v.Stride())
	assert.Equal(t, 0, v.Offset())
	assert.Equal(t, 2, v.NumDims())
	assert.Equal(t, 3, v.Dim(1))
	assert.Equal(t, 9, v.Size())

	want := 1
	for r := range 3 {
		for c := range 3 {
			got, err := v.Get(r, c)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want, v.GetUnchecked(r, c))
			want++
		}
	}
	assert.Equal(t, "[[1, 2, 3], [4, 5, 6], [7, 8, 9]]", v.String())
}

func TestViewIndexOutOfBounds(t *testing.T) {
	v := borrow(t, [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	tests := []struct {
		index []int
		msg   string
	}{
		{[]int{3, 0}, "nd: index 3 out of bounds for dimension 0 of length 3"},
		{[]int{0, 4}, "nd: index 4 out of bounds for dimension 1 of length 4"},
		{[]int{3, 4}, "nd: index 3 out of bounds for dimension 0 of length 3"},
		{[]int{-1, 0}, "nd: index -1 out of bounds for dimension 0 of length 3"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.index), func(t *testing.T) {
			_, err := v.Get(tt.index...)
			require.ErrorIs(t, err, ErrIndexOutOfBounds)
			assert.EqualError(t, err, tt.msg)
			assert.PanicsWithError(t, tt.msg, func() { v.At(tt.index...) })
		})
	}

	_, err := v.Get(1)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = v.Get(1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestMutViewSet(t *testing.T) {
	b, err := FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	m, err := b.AsMutView()
	require.NoError(t, err)
	require.NoError(t, m.Set(10, 0, 1))
	m.SetUnchecked(20, 1, 0)
	require.ErrorIs(t, m.Set(0, 2, 0), ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 0), ErrInvalidDimension)

	assert.Equal(t, 10, m.At(0, 1))
	got, err := m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
	assert.Equal(t, 20, m.GetUnchecked(1, 0))
	assert.Equal(t, "[[1, 10], [20, 4]]", m.String())
	m.Release()

	assert.Equal(t, "[[1, 10], [20, 4]]", b.String())
}

func TestMutViewWritesThroughTransforms(t *testing.T) {
	b, err := NewDefault[int](Shape{3, 4})
	require.NoError(t, err)
	m, err := b.AsMutView()
	require.NoError(t, err)

	col, err := m.Transpose().Extract(0, 2)
	require.NoError(t, err)
	require.NoError(t, col.Fill(7))

	corner, err := m.Slice(Range(1, 3), Range(0, 2))
	require.NoError(t, err)
	require.NoError(t, corner.Set(1, 1, 1))

	sub, err := m.SliceAxis(1, All().Step(3))
	require.NoError(t, err)
	require.NoError(t, sub.Set(5, 0, 1))

	perm, err := m.Permute(1, 0)
	require.NoError(t, err)
	require.NoError(t, perm.Set(9, 0, 0))

	assert.Equal(t, Shape{3, 2}, sub.Shape())
	assert.Equal(t, Stride{4, 3}, sub.Stride())
	assert.Equal(t, 2, col.Offset())
	assert.Equal(t, 1, col.NumDims())
	assert.Equal(t, 3, col.Dim(0))
	assert.Equal(t, 3, col.Size())
	m.Release()

	assert.Equal(t, "[[9, 0, 7, 5], [0, 0, 7, 0], [0, 1, 7, 0]]", b.String())
	v, err := b.AsView()
	require.NoError(t, err)
	defer v.Release()
	assert.Equal(t, 1, v.At(2, 1))
}

func TestMutViewAsViewSharesBorrow(t *testing.T) {
	b, err := FromSlice(Shape{2}, []int{1, 2})
	require.NoError(t, err)
	m, err := b.AsMutView()
	require.NoError(t, err)

	v := m.AsView()
	require.NoError(t, m.Set(5, 0))
	assert.Equal(t, 5, v.At(0), "reads see writes through the exclusive view")

	_, err = b.AsView()
	require.ErrorIs(t, err, ErrBorrowConflict, "AsView does not take a new borrow")

	v.Release()
	require.ErrorIs(t, m.Set(6, 1), ErrReleased)
	other, err := b.AsMutView()
	require.NoError(t, err)
	other.Release()
}

func TestMutViewAll(t *testing.T) {
	b, err := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	require.NoError(t, err)
	m, err := b.AsMutView()
	require.NoError(t, err)
	for _, p := range m.All() {
		*p *= 10
	}
	m.Release()
	assert.Equal(t, "[[10, 20], [30, 40]]", b.String())
}

func TestSameLayout(t *testing.T) {
	v := borrow(t, [][]int{{1, 2}, {3, 4}})
	w := borrow(t, [][]int{{1, 2}, {3, 4}})

	assert.True(t, v.SameLayout(v))
	assert.True(t, v.SameLayout(v.Transpose().Transpose()))
	assert.False(t, v.SameLayout(v.Transpose()))
	assert.False(t, v.SameLayout(w), "different buffers")
	assert.True(t, Equal(v, w), "same contents")
}

func TestEqual(t *testing.T) {
	a := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	assert.True(t, Equal(a, borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})))
	assert.False(t, Equal(a, borrow(t, [][]int{{1, 2, 3}, {4, 5, 7}})))
	assert.False(t, Equal(a, borrow(t, [][]int{{1, 2}, {4, 5}})))
	assert.False(t, Equal(a, borrow(t, [][]int{{1, 2, 3}})))
	assert.False(t, Equal(a, a.Transpose()))

	one := borrowSlice(t, Shape{}, []int{1})
	assert.True(t, Equal(one, borrowSlice(t, Shape{}, []int{1})))
	assert.False(t, Equal(one, borrowSlice(t, Shape{}, []int{2})))

	asFloat := borrow(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.True(t, EqualFunc(a, asFloat, func(x int, y float64) bool { return float64(x) == y }))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", borrowSlice(t, Shape{3}, []int{1, 2, 3}).String())
	assert.Equal(t,
		`[["A", "B", "C"], ["DE", "FG", "HI"], ["JKL", "MNO", "PQR"]]`,
		borrow(t, [][]string{{"A", "B", "C"}, {"DE", "FG", "HI"}, {"JKL", "MNO", "PQR"}}).String(),
	)
	assert.Equal(t, "[]", borrowSlice(t, Shape{0}, []int{}).String())
	assert.Equal(t, "[[], []]", borrowSlice(t, Shape{2, 0}, []int{}).String())
	assert.Equal(t, "1.5", borrowSlice(t, Shape{}, []float64{1.5}).String())
}
