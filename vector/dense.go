// Package vector: Dense is the concrete flat-slice implementation of the
// Vector contract, storing elements contiguously for cache friendliness and
// to unlock the SIMD fast paths in the package kernels.
package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cora/numeric"
)

// Dense is a fixed-length vector of T backed by a flat slice.
// The length is immutable after construction; elements are mutable in place.
type Dense[T numeric.Float] struct {
	data []T // backing storage, length fixed at construction
}

// Get returns the element at index i.
// Out-of-range i panics (runtime bounds check) — a programmer error, never
// a recoverable failure.
// Complexity: O(1).
func (v *Dense[T]) Get(i int) T {
	return v.data[i] // bounds enforced by the runtime
}

// Set assigns x at index i.
// Out-of-range i panics (runtime bounds check).
// Complexity: O(1).
func (v *Dense[T]) Set(i int, x T) {
	v.data[i] = x // bounds enforced by the runtime
}

// Len reports the fixed number of elements.
// Complexity: O(1).
func (v *Dense[T]) Len() int {
	return len(v.data)
}

// IsEmpty reports whether the vector has zero elements.
// Complexity: O(1).
func (v *Dense[T]) IsEmpty() bool {
	return len(v.data) == 0
}

// Clone returns an independent deep copy; mutating the clone never affects
// the original (single-owner semantics).
// Complexity: O(n) time and memory.
func (v *Dense[T]) Clone() Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data) // copy all elements into fresh storage
	return &Dense[T]{data: data}
}

// ToSlice returns the elements as a newly allocated slice in index order.
// The returned slice does not alias the vector's storage.
// Complexity: O(n).
func (v *Dense[T]) ToSlice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (v *Dense[T]) String() string {
	var b strings.Builder
	b.WriteByte('[') // open vector
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ") // separate values with comma
		}
		fmt.Fprintf(&b, "%g", float64(x))
	}
	b.WriteByte(']') // close vector
	return b.String()
}
