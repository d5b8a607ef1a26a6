// Package ops implements elementwise arithmetic over nd views.
//
// Operations read their inputs through views, so inputs may be transposed,
// sliced or broadcast (AddDimension) without copying. Results are written into
// freshly allocated buffers, or in place through an exclusive view for the
// *Assign variants.
//
// Example:
//
//	// Fahrenheit to Celsius: (f - 32) / 1.8, broadcasting the constants.
//	c32, _ := nd.Scalar(32.0).AsView()
//	c32, _ = c32.AddDimension(0, days)
//	c32, _ = c32.AddDimension(1, cities)
//	diff, _ := ops.Sub(fahrenheit, c32)
package ops
