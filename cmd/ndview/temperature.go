package main

import (
	"fmt"
	"io"
	"math"

	"github.com/born-ml/ndview/nd"
	"github.com/born-ml/ndview/ops"
	"k8s.io/klog/v2"
)

// Daily highs in Fahrenheit, one row per day and one column per city.
var fahrenheit = [][]float64{
	{72, 80, 79},
	{79, 79, 79},
	{76, 73, 83},
	{80, 70, 72},
	{77, 75, 81},
	{80, 77, 76},
	{78, 76, 71},
	{82, 75, 72},
	{81, 80, 80},
	{77, 81, 82},
}

// temperature converts the table to Celsius by broadcasting the conversion
// constants over it, then averages each city's column.
func temperature(w io.Writer) error {
	fb, err := nd.FromRows(fahrenheit)
	if err != nil {
		return err
	}
	f, err := fb.AsView()
	if err != nil {
		return err
	}
	defer f.Release()
	days, cities := f.Dim(0), f.Dim(1)

	c32, err := broadcast(32, days, cities)
	if err != nil {
		return err
	}
	defer c32.Release()
	c18, err := broadcast(1.8, days, cities)
	if err != nil {
		return err
	}
	defer c18.Release()
	klog.V(1).InfoS("Broadcast constants", "shape", c32.Shape(), "stride", c32.Stride())

	diff, err := ops.Sub(f, c32)
	if err != nil {
		return err
	}
	dv, err := diff.AsView()
	if err != nil {
		return err
	}
	cb, err := ops.Div(dv, c18)
	dv.Release()
	if err != nil {
		return err
	}
	celsius, err := cb.AsView()
	if err != nil {
		return err
	}
	defer celsius.Release()

	rounded, err := ops.Map(celsius, func(x float64) float64 { return math.Round(x*10) / 10 })
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fahrenheit: %v\n", f)
	fmt.Fprintf(w, "celsius:    %v\n", rounded)

	for city := range cities {
		col, err := celsius.Extract(1, city)
		if err != nil {
			return err
		}
		total, err := ops.Sum(col)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "city %d average: %.2f °C\n", city, total/float64(days))
	}
	return nil
}

// broadcast returns a days x cities view in which every element is x,
// backed by a single value.
func broadcast(x float64, days, cities int) (nd.View[float64], error) {
	v, err := nd.Scalar(x).AsView()
	if err != nil {
		return nd.View[float64]{}, err
	}
	v, err = v.AddDimension(0, days)
	if err != nil {
		return nd.View[float64]{}, err
	}
	return v.AddDimension(1, cities)
}
