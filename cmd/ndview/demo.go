package main

import (
	"fmt"
	"io"

	"github.com/born-ml/ndview/nd"
	"k8s.io/klog/v2"
)

// demo walks through the basic view transformations.
func demo(w io.Writer) error {
	m, err := nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		return err
	}
	v, err := m.AsView()
	if err != nil {
		return err
	}
	defer v.Release()
	klog.V(1).InfoS("Borrowed view", "shape", v.Shape(), "stride", v.Stride())

	t := v.Transpose()
	fmt.Fprintf(w, "matrix:          %v\n", v)
	fmt.Fprintf(w, "transpose:       %v  stride %v\n", t, t.Stride())

	row, err := v.Extract(0, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "extract(0, 1):   %v\n", row)

	if err := broadcastDemo(w); err != nil {
		return err
	}

	sq, err := nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		return err
	}
	sv, err := sq.AsView()
	if err != nil {
		return err
	}
	defer sv.Release()
	stepped, err := sv.Slice(nd.All(), nd.All().Step(2))
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Sliced view", "offset", stepped.Offset(), "stride", stepped.Stride())
	fmt.Fprintf(w, "slice(:, ::2):   %v\n", stepped)

	_, getErr := sv.Get(3, 0)
	_, err = fmt.Fprintf(w, "get(3, 0):       %v\n", getErr)
	return err
}

// broadcastDemo writes through a stride-0 dimension, showing that every
// index along it aliases one element.
func broadcastDemo(w io.Writer) error {
	b, err := nd.FromSlice(nd.Shape{3}, []int{1, 2, 3})
	if err != nil {
		return err
	}
	m, err := b.AsMutView()
	if err != nil {
		return err
	}
	defer m.Release()

	rows, err := m.AddDimension(0, 3)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "add_dimension:   %v\n", rows)
	if err := rows.Set(5, 1, 0); err != nil {
		return err
	}
	fmt.Fprintf(w, "after set(1, 0): %v\n", rows)
	return nil
}
