// SPDX-License-Identifier: MIT
// Package vector: elementwise arithmetic kernels.
//
// Purpose:
//   - Provide the binary elementwise algebra of the contract: pure variants
//     (fresh result) and in-place variants (mutate dst, return it for
//     chaining), plus the per-element scalar updates.
//
// Determinism & Performance:
//   - *Dense×*Dense pairs run on contiguous storage via the vek SIMD
//     kernels; elementwise results are order-independent, so SIMD never
//     changes observable values.
//   - The interface fallback uses a fixed left-to-right loop.
//
// Failure semantics:
//   - Mismatched lengths and nil operands PANIC via the central validators.
//   - Division by zero follows IEEE semantics (±Inf, NaN); it is not an
//     error condition at this layer.

package vector

import "github.com/katalvlaran/cora/numeric"

// binaryInPlace is the shared kernel behind the four in-place operations:
// it validates shapes once, takes the flat fast path when both operands are
// *Dense, and otherwise applies the scalar combiner in fixed index order.
// Returns dst to support chaining.
func binaryInPlace[T numeric.Float](op string, dst, other Vector[T], fast func(dst, src []T), scalar func(a, b T) T) Vector[T] {
	// Validate shapes match before touching any element.
	mustSameLen(op, dst, other)

	// Fast path: both operands expose contiguous storage.
	if d, okD := dst.(*Dense[T]); okD {
		if o, okO := other.(*Dense[T]); okO {
			fast(d.data, o.data) // SIMD kernel on flat slices
			return dst
		}
	}

	// Fallback: interface path with fixed left-to-right order.
	n := dst.Len()
	for i := 0; i < n; i++ {
		dst.Set(i, scalar(dst.Get(i), other.Get(i)))
	}
	return dst
}

// AddInPlace computes dst[i] += other[i], overwriting dst with the result.
// Returns dst for chaining. Panics on length mismatch.
// Complexity: O(n).
func AddInPlace[T numeric.Float](dst, other Vector[T]) Vector[T] {
	return binaryInPlace(opAddInPlace, dst, other, addSlice[T], func(a, b T) T { return a + b })
}

// SubInPlace computes dst[i] -= other[i], overwriting dst with the result.
// Returns dst for chaining. Panics on length mismatch.
// Complexity: O(n).
func SubInPlace[T numeric.Float](dst, other Vector[T]) Vector[T] {
	return binaryInPlace(opSubInPlace, dst, other, subSlice[T], func(a, b T) T { return a - b })
}

// MulInPlace computes dst[i] *= other[i] (Hadamard product), overwriting
// dst with the result. Returns dst for chaining. Panics on length mismatch.
// Complexity: O(n).
func MulInPlace[T numeric.Float](dst, other Vector[T]) Vector[T] {
	return binaryInPlace(opMulInPlace, dst, other, mulSlice[T], func(a, b T) T { return a * b })
}

// DivInPlace computes dst[i] /= other[i], overwriting dst with the result.
// Zero divisors yield ±Inf/NaN per IEEE semantics. Returns dst for chaining.
// Panics on length mismatch.
// Complexity: O(n).
func DivInPlace[T numeric.Float](dst, other Vector[T]) Vector[T] {
	return binaryInPlace(opDivInPlace, dst, other, divSlice[T], func(a, b T) T { return a / b })
}

// Add returns a fresh vector with a[i] + b[i]; operands are not mutated.
// The result has the concrete type of a's Clone. Panics on length mismatch.
// Complexity: O(n) time and memory.
func Add[T numeric.Float](a, b Vector[T]) Vector[T] {
	mustSameLen(opAdd, a, b)
	return AddInPlace(a.Clone(), b)
}

// Sub returns a fresh vector with a[i] - b[i]; operands are not mutated.
// Panics on length mismatch.
// Complexity: O(n) time and memory.
func Sub[T numeric.Float](a, b Vector[T]) Vector[T] {
	mustSameLen(opSub, a, b)
	return SubInPlace(a.Clone(), b)
}

// Mul returns a fresh vector with the elementwise product a[i] * b[i];
// operands are not mutated. Panics on length mismatch.
// Complexity: O(n) time and memory.
func Mul[T numeric.Float](a, b Vector[T]) Vector[T] {
	mustSameLen(opMul, a, b)
	return MulInPlace(a.Clone(), b)
}

// Div returns a fresh vector with a[i] / b[i]; operands are not mutated.
// Panics on length mismatch.
// Complexity: O(n) time and memory.
func Div[T numeric.Float](a, b Vector[T]) Vector[T] {
	mustSameLen(opDiv, a, b)
	return DivInPlace(a.Clone(), b)
}

// AddElement adds x to the element at pos, writing the result back into v.
// Out-of-range pos panics.
// Complexity: O(1).
func AddElement[T numeric.Float](v Vector[T], pos int, x T) {
	mustNotNil("AddElement", v)
	v.Set(pos, v.Get(pos)+x)
}

// SubElement subtracts x from the element at pos, writing the result back
// into v. Out-of-range pos panics.
// Complexity: O(1).
func SubElement[T numeric.Float](v Vector[T], pos int, x T) {
	mustNotNil("SubElement", v)
	v.Set(pos, v.Get(pos)-x)
}

// MulElement multiplies the element at pos by x, writing the result back
// into v. Out-of-range pos panics.
// Complexity: O(1).
func MulElement[T numeric.Float](v Vector[T], pos int, x T) {
	mustNotNil("MulElement", v)
	v.Set(pos, v.Get(pos)*x)
}

// DivElement divides the element at pos by x, writing the result back into
// v. A zero divisor yields ±Inf/NaN per IEEE semantics. Out-of-range pos
// panics.
// Complexity: O(1).
func DivElement[T numeric.Float](v Vector[T], pos int, x T) {
	mustNotNil("DivElement", v)
	v.Set(pos, v.Get(pos)/x)
}
