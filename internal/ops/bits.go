package ops

import "github.com/born-ml/ndview/internal/nd"

// BitAnd returns a & b.
func BitAnd[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x & y })
}

// BitOr returns a | b.
func BitOr[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x | y })
}

// BitXor returns a ^ b.
func BitXor[T Integer](a, b nd.View[T]) (*nd.Buffer[T], error) {
	return ZipMap(a, b, func(x, y T) T { return x ^ y })
}

// Not returns the bitwise complement ^v.
func Not[T Integer](v nd.View[T]) (*nd.Buffer[T], error) {
	return Map(v, func(x T) T { return ^x })
}

// Shl shifts each element of a left by the matching count in n.
// Counts of at least the bit width yield 0.
func Shl[T Integer, S Unsigned](a nd.View[T], n nd.View[S]) (*nd.Buffer[T], error) {
	return ZipMap(a, n, func(x T, s S) T { return x << s })
}

// Shr shifts each element of a right by the matching count in n.
// Signed elements shift arithmetically.
func Shr[T Integer, S Unsigned](a nd.View[T], n nd.View[S]) (*nd.Buffer[T], error) {
	return ZipMap(a, n, func(x T, s S) T { return x >> s })
}

// RemAssign performs dst %= src elementwise.
func RemAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x % y })
}

// AndAssign performs dst &= src elementwise.
func AndAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x & y })
}

// OrAssign performs dst |= src elementwise.
func OrAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x | y })
}

// XorAssign performs dst ^= src elementwise.
func XorAssign[T Integer](dst nd.MutView[T], src nd.View[T]) error {
	return update(dst, src, func(x, y T) T { return x ^ y })
}

// ShlAssign performs dst <<= n elementwise.
func ShlAssign[T Integer, S Unsigned](dst nd.MutView[T], n nd.View[S]) error {
	return update(dst, n, func(x T, s S) T { return x << s })
}

// ShrAssign performs dst >>= n elementwise.
func ShrAssign[T Integer, S Unsigned](dst nd.MutView[T], n nd.View[S]) error {
	return update(dst, n, func(x T, s S) T { return x >> s })
}
