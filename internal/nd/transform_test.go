package nd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cube(t *testing.T) View[int] {
	t.Helper()
	b, err := NewWith(Shape{2, 3, 4}, func(i []int) int { return i[0]*100 + i[1]*10 + i[2] })
	require.NoError(t, err)
	v, err := b.AsView()
	require.NoError(t, err)
	t.Cleanup(v.Release)
	return v
}

// Extract

func TestExtract(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := v.Extract(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "[4, 5, 6]", row.String())
	assert.Equal(t, 3, row.Offset())

	col, err := v.Extract(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "[3, 6]", col.String())
	assert.Equal(t, Stride{3}, col.Stride())

	scalar, err := row.Extract(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.NumDims())
	assert.Equal(t, 4, scalar.At())
}

func TestExtractErrors(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	_, err := v.Extract(0, 2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = v.Extract(1, -1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = v.Extract(2, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = v.Extract(-1, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	// The receiver is unchanged by a failure.
	assert.Equal(t, Shape{2, 3}, v.Shape())
}

func TestExtractMatchesSliceThenDrop(t *testing.T) {
	v := cube(t)
	for d := range v.NumDims() {
		for i := range v.Dim(d) {
			extracted, err := v.Extract(d, i)
			require.NoError(t, err)
			sliced, err := v.SliceAxis(d, Range(i, i+1))
			require.NoError(t, err)
			dropped, err := sliced.Extract(d, 0)
			require.NoError(t, err)
			assert.True(t, extracted.SameLayout(dropped), "d=%d i=%d", d, i)
		}
	}
}

func TestRowsAndColumns(t *testing.T) {
	v := borrow(t, [][]int{{1, -2, 3}, {-4, 5, -6}})
	var rows, cols []string
	for row := range v.Rows() {
		rows = append(rows, row.String())
	}
	for col := range v.Transpose().Rows() {
		cols = append(cols, col.String())
	}
	assert.Equal(t, []string{"[1, -2, 3]", "[-4, 5, -6]"}, rows)
	assert.Equal(t, []string{"[1, -4]", "[-2, 5]", "[3, -6]"}, cols)
}

// AddDimension

func TestAddDimension(t *testing.T) {
	v := borrowSlice(t, Shape{3}, []int{1, 2, 3})

	rows, err := v.AddDimension(0, 3)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2, 3], [1, 2, 3], [1, 2, 3]]", rows.String())
	assert.Equal(t, Stride{0, 1}, rows.Stride())

	cols, err := v.AddDimension(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 1], [2, 2], [3, 3]]", cols.String())

	empty, err := v.AddDimension(1, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 0}, empty.Shape())
	assert.Equal(t, 0, empty.Size())
}

func TestAddDimensionToScalar(t *testing.T) {
	v := borrowSlice(t, Shape{}, []float64{32})
	grid, err := v.AddDimension(0, 2)
	require.NoError(t, err)
	grid, err = grid.AddDimension(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "[[32, 32, 32], [32, 32, 32]]", grid.String())
}

func TestAddDimensionErrors(t *testing.T) {
	v := borrowSlice(t, Shape{3}, []int{1, 2, 3})
	_, err := v.AddDimension(2, 1)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = v.AddDimension(-1, 1)
	require.ErrorIs(t, err, ErrInvalidDimension)
	_, err = v.AddDimension(0, -1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestAddDimensionOverflow(t *testing.T) {
	v := borrowSlice(t, Shape{3}, []int{1, 2, 3})

	_, err := v.AddDimension(0, math.MaxInt/2)
	require.ErrorIs(t, err, ErrInvalidShape)

	wide, err := v.AddDimension(0, math.MaxInt/4)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/4*3, wide.Size())
	_, err = wide.AddDimension(2, 2)
	require.ErrorIs(t, err, ErrInvalidShape)

	// An empty view stays empty however long the new dimension is.
	empty, err := v.Slice(Range(0, 0))
	require.NoError(t, err)
	huge, err := empty.AddDimension(0, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 0, huge.Size())

	b, err := NewDefault[int](Shape{3})
	require.NoError(t, err)
	m, err := b.AsMutView()
	require.NoError(t, err)
	defer m.Release()
	_, err = m.AddDimension(1, math.MaxInt)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestExtractUndoesAddDimension(t *testing.T) {
	v := cube(t)
	for d := 0; d <= v.NumDims(); d++ {
		added, err := v.AddDimension(d, 4)
		require.NoError(t, err)
		for i := range 4 {
			back, err := added.Extract(d, i)
			require.NoError(t, err)
			assert.True(t, back.SameLayout(v), "d=%d i=%d", d, i)
		}
	}
}

func TestBroadcastWriteIsShared(t *testing.T) {
	b, err := FromSlice(Shape{3}, []int{1, 2, 3})
	require.NoError(t, err)
	m, err := b.AsMutView()
	require.NoError(t, err)
	defer m.Release()

	grid, err := m.AddDimension(0, 3)
	require.NoError(t, err)
	require.NoError(t, grid.Set(5, 1, 0))

	for i := range 3 {
		assert.Equal(t, 5, grid.At(i, 0), "row %d", i)
	}
	assert.Equal(t, "[[5, 2, 3], [5, 2, 3], [5, 2, 3]]", grid.String())
}

// Slice

func TestSliceStep(t *testing.T) {
	v := borrowSlice(t, Shape{10}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	s, err := v.Slice(All().Step(3))
	require.NoError(t, err)
	assert.Equal(t, "[1, 4, 7, 10]", s.String())
}

func TestSlice(t *testing.T) {
	v := borrow(t, [][]int{
		{1, -2, 3, -4},
		{-5, 6, -7, 8},
		{9, -10, 11, -12},
		{-13, 14, -15, 16},
	})

	tests := []struct {
		name   string
		bounds []Bounds
		want   string
	}{
		{"all", []Bounds{All(), All()}, "[[1, -2, 3, -4], [-5, 6, -7, 8], [9, -10, 11, -12], [-13, 14, -15, 16]]"},
		{"both", []Bounds{All().From(1).To(3), All().From(1).To(3)}, "[[6, -7], [-10, 11]]"},
		{"step both", []Bounds{All().Step(2), All().Step(2)}, "[[1, 3], [9, 11]]"},
		{"slice and step", []Bounds{All().From(1).Step(2), All().From(2).Step(2)}, "[[-7], [-15]]"},
		{"inclusive", []Bounds{Range(0, 1), All().ToInclusive(1)}, "[[1, -2]]"},
		{"empty", []Bounds{Range(2, 2), All()}, "[]"},
		{"at end", []Bounds{All().From(4), All()}, "[]"},
		{"huge step", []Bounds{All().Step(math.MaxInt), All().From(1).Step(math.MaxInt - 1)}, "[[-2]]"},
		{"zero bounds", []Bounds{{}, Range(3, 4)}, "[[-4], [8], [-12], [16]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := v.Slice(tt.bounds...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestSliceHugeStep(t *testing.T) {
	v := borrowSlice(t, Shape{3}, []int{1, 2, 3})

	s, err := v.Slice(All().Step(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, Shape{1}, s.Shape())
	assert.Equal(t, []int{1}, Collect(s))
	assert.GreaterOrEqual(t, s.Stride()[0], 0)

	s, err = v.Slice(All().From(1).Step(math.MaxInt / 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, Collect(s))

	s, err = v.Slice(All().From(3).Step(math.MaxInt))
	require.NoError(t, err)
	assert.Equal(t, Shape{0}, s.Shape())
	assert.Empty(t, Collect(s))
}

func TestSliceLengthRoundsUp(t *testing.T) {
	v := borrowSlice(t, Shape{7}, []int{0, 1, 2, 3, 4, 5, 6})
	for step, want := range map[int][]int{
		1: {0, 1, 2, 3, 4, 5, 6},
		2: {0, 2, 4, 6},
		3: {0, 3, 6},
		6: {0, 6},
		7: {0},
		8: {0},
	} {
		s, err := v.Slice(All().Step(step))
		require.NoError(t, err)
		assert.Equal(t, want, Collect(s), "step %d", step)
	}
}

func TestZeroBoundsIsAll(t *testing.T) {
	v := cube(t)
	s, err := v.Slice(Bounds{}, Bounds{}, Bounds{})
	require.NoError(t, err)
	assert.True(t, s.SameLayout(v))
	assert.Equal(t, All().String(), Bounds{}.String())
}

func TestSliceFullRangeIsIdentity(t *testing.T) {
	v := cube(t)
	s, err := v.Slice(All(), All(), All())
	require.NoError(t, err)
	assert.True(t, s.SameLayout(v))

	s, err = v.Slice(Range(0, 2), Range(0, 3), All().From(0).To(4).Step(1))
	require.NoError(t, err)
	assert.True(t, s.SameLayout(v))
}

func TestSliceLayout(t *testing.T) {
	v := cube(t)
	s, err := v.Slice(Range(1, 2), All().From(1).Step(2), Range(1, 4).Step(2))
	require.NoError(t, err)

	assert.Equal(t, Shape{1, 1, 2}, s.Shape())
	assert.Equal(t, Stride{12, 8, 2}, s.Stride())
	assert.Equal(t, 12+4+1, s.Offset())
	assert.Equal(t, "[[[111, 113]]]", s.String())
}

func TestSliceErrors(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name   string
		bounds []Bounds
		err    error
	}{
		{"step 0", []Bounds{All().Step(0), All()}, ErrInvalidRange},
		{"step 0 after range", []Bounds{Range(0, 1).Step(0), All()}, ErrInvalidRange},
		{"negative step", []Bounds{All(), All().Step(-1)}, ErrInvalidRange},
		{"start after end", []Bounds{Range(2, 1), All()}, ErrInvalidRange},
		{"end past len", []Bounds{All(), All().To(4)}, ErrInvalidRange},
		{"start past len", []Bounds{All().From(3), All()}, ErrInvalidRange},
		{"negative start", []Bounds{All().From(-1), All()}, ErrInvalidRange},
		{"too few bounds", []Bounds{All()}, ErrInvalidDimension},
		{"too many bounds", []Bounds{All(), All(), All()}, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Slice(tt.bounds...)
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := v.SliceAxis(2, All())
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestBoundsString(t *testing.T) {
	assert.Equal(t, "::1", All().String())
	assert.Equal(t, "1:3:2", Range(1, 3).Step(2).String())
	assert.Equal(t, ":5:1", All().ToInclusive(4).String())
}

// Transpose and Permute

func TestTranspose(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr := v.Transpose()
	assert.Equal(t, "[[1, 4], [2, 5], [3, 6]]", tr.String())
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, Stride{1, 3}, tr.Stride())
	assert.True(t, tr.Transpose().SameLayout(v))

	c := cube(t)
	assert.Equal(t, Shape{4, 3, 2}, c.Transpose().Shape())
	assert.True(t, c.Transpose().Transpose().SameLayout(c))
}

func TestPermute(t *testing.T) {
	v := cube(t)
	p, err := v.Permute(1, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, Shape{3, 4, 2}, p.Shape())
	assert.Equal(t, Stride{4, 1, 12}, p.Stride())
	assert.Equal(t, 123, p.At(2, 3, 1))

	// (1 2 0) is undone by its inverse (2 0 1).
	back, err := p.Permute(2, 0, 1)
	require.NoError(t, err)
	assert.True(t, back.SameLayout(v))

	// Composition: applying a then b equals applying a[b[k]].
	a, b := []int{2, 0, 1}, []int{1, 2, 0}
	ab, err := v.Permute(a...)
	require.NoError(t, err)
	ab, err = ab.Permute(b...)
	require.NoError(t, err)
	composed := make([]int, 3)
	for k := range composed {
		composed[k] = a[b[k]]
	}
	direct, err := v.Permute(composed...)
	require.NoError(t, err)
	assert.True(t, ab.SameLayout(direct))

	rev, err := v.Permute(2, 1, 0)
	require.NoError(t, err)
	assert.True(t, rev.SameLayout(v.Transpose()))
}

func TestPermuteErrors(t *testing.T) {
	v := cube(t)
	for _, order := range [][]int{{0, 1}, {0, 1, 2, 3}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err := v.Permute(order...)
		require.ErrorIs(t, err, ErrInvalidDimension, "order %v", order)
	}
}

// Every transformation preserves element values under its index remapping.
func TestTransformsPreserveValues(t *testing.T) {
	v := cube(t)

	p, err := v.Permute(2, 0, 1)
	require.NoError(t, err)
	for idx, x := range p.All() {
		assert.Equal(t, v.At(idx[1], idx[2], idx[0]), x)
	}

	s, err := v.Slice(All(), Range(1, 3), All().From(1).Step(2))
	require.NoError(t, err)
	for idx, x := range s.All() {
		assert.Equal(t, v.At(idx[0], 1+idx[1], 1+2*idx[2]), x)
	}

	e, err := v.Extract(1, 2)
	require.NoError(t, err)
	for idx, x := range e.All() {
		assert.Equal(t, v.At(idx[0], 2, idx[1]), x)
	}

	a, err := v.AddDimension(1, 5)
	require.NoError(t, err)
	for idx, x := range a.All() {
		assert.Equal(t, v.At(idx[0], idx[2], idx[3]), x)
	}

	for idx, x := range v.Transpose().All() {
		assert.Equal(t, v.At(idx[2], idx[1], idx[0]), x)
	}
}

// Small matrices

func TestTransposeRows(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	assert.True(t, Equal(v.Transpose(), borrow(t, [][]int{{1, 4}, {2, 5}, {3, 6}})))
}

func TestExtractRow(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	row, err := v.Extract(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, Collect(row))
}

func TestStepColumns(t *testing.T) {
	v := borrow(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s, err := v.SliceAxis(1, All().Step(2))
	require.NoError(t, err)
	assert.True(t, Equal(s, borrow(t, [][]int{{1, 3}, {4, 6}, {7, 9}})))
}
