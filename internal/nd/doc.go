// Package nd implements zero-copy N-dimensional views over row-major buffers.
//
// A Buffer owns the elements. A View (shared, read-only) or MutView
// (exclusive, read-write) describes a logical arrangement of those elements
// by a base offset, a shape and a stride:
//
//	element(idx) = storage[offset + sum(idx[d] * stride[d])]
//
// Reshaping operations only rewrite the shape and stride:
//   - Extract(d, i): fix dimension d at i and drop it
//   - AddDimension(d, n): insert a broadcast dimension (stride 0)
//   - Slice(bounds...): restrict and decimate each dimension
//   - Permute(order...) / Transpose(): reorder dimensions
//
// # Borrowing
//
// Buffers hand out leases instead of relying on a borrow checker. Any number
// of shared views may be live at once, or a single exclusive one. Borrowing
// against these rules fails with ErrBorrowConflict; leases are returned with
// Release. The Go garbage collector keeps storage alive for as long as a view
// references it, so leases only govern aliasing.
//
// # Example
//
//	b, _ := nd.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	v, _ := b.AsView()
//	defer v.Release()
//	fmt.Println(v.Transpose()) // [[1, 4], [2, 5], [3, 6]]
package nd
