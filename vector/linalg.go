// SPDX-License-Identifier: MIT
// Package vector: inner product, norms and tolerant equality.
//
// Purpose:
//   - Dot, Norm2, the general p-norm and ApproxEqual over any Vector
//     implementation.
//
// Determinism & Performance:
//   - Dot and Norm2 take the vek SIMD fast path on *Dense operands; the
//     interface fallback accumulates in fixed left-to-right order.
//   - The general p-norm is a scalar loop: Pow dominates the cost, SIMD
//     would not change observable results materially but p is arbitrary.

package vector

import (
	"math"

	"github.com/katalvlaran/cora/numeric"
)

// Dot returns the inner product Σ a[i]·b[i]. Defined for equal-length
// vectors only; mismatched lengths panic.
// Complexity: O(n).
func Dot[T numeric.Float](a, b Vector[T]) T {
	mustSameLen(opDot, a, b)

	// Fast path: contiguous storage on both sides.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			return dotSlice(da.data, db.data)
		}
	}

	// Fallback: fixed left-to-right accumulation.
	var acc T
	n := a.Len()
	for i := 0; i < n; i++ {
		acc += a.Get(i) * b.Get(i)
	}
	return acc
}

// Norm2 returns the Euclidean (L2) norm √(v·v).
// Complexity: O(n).
func Norm2[T numeric.Float](v Vector[T]) T {
	mustNotNil("Norm2", v)
	if d, ok := v.(*Dense[T]); ok {
		return normSlice(d.data) // SIMD norm on flat storage
	}
	return sqrtT(Dot(v, v))
}

// Norm returns the general p-norm (Σ |x|ᵖ)^(1/p) for a Real-valued order p,
// including non-integer p.
//
// Infinite orders use the conventional limits the precision can represent:
//   - p = +Inf → max |x| (0 for an empty vector)
//   - p = -Inf → min |x| (0 for an empty vector)
//
// Complexity: O(n); the finite-p path pays one Pow per element.
func Norm[T numeric.Float](v Vector[T], p T) T {
	mustNotNil("Norm", v)
	n := v.Len()
	pf := float64(p) // float32 ±Inf converts to float64 ±Inf exactly

	switch {
	case math.IsInf(pf, 1):
		// Limit of the p-norm as p→+∞: the largest absolute element.
		var max T
		for i := 0; i < n; i++ {
			if a := absT(v.Get(i)); a > max {
				max = a
			}
		}
		return max

	case math.IsInf(pf, -1):
		// Limit as p→−∞: the smallest absolute element.
		if n == 0 {
			return 0
		}
		min := absT(v.Get(0))
		for i := 1; i < n; i++ {
			if a := absT(v.Get(i)); a < min {
				min = a
			}
		}
		return min

	default:
		var acc T
		for i := 0; i < n; i++ { // fixed left-to-right accumulation
			acc += powT(absT(v.Get(i)), p)
		}
		return powT(acc, 1/p)
	}
}

// ApproxEqual reports whether every corresponding element pair of a and b
// differs by no more than eps in absolute value. Vectors of different
// lengths are never approximately equal (the comparison is false, not a
// panic: equality queries are questions, not contracts).
//
// NaN elements compare as equal here (|NaN| > eps is false), matching the
// elementwise-difference definition.
// Complexity: O(n).
func ApproxEqual[T numeric.Float](a, b Vector[T], eps T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil // two absent vectors are vacuously equal
	}
	if a.Len() != b.Len() {
		return false
	}
	n := a.Len()
	for i := 0; i < n; i++ {
		if absT(a.Get(i)-b.Get(i)) > eps {
			return false
		}
	}
	return true
}
