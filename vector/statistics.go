// SPDX-License-Identifier: MIT
// Package vector: reduction and statistics kernels.
//
// Purpose:
//   - Sum, Mean, Var, Std and Unique over any Vector implementation.
//
// Determinism & Reproducibility:
//   - Accumulation order is OBSERVABLE for these kernels, so they always
//     run a single scalar left-to-right pass — never SIMD — to stay
//     bit-reproducible across containers and platforms.
//   - Var uses the one-pass accumulator E[x²] − E[x]², gathering Σx and Σx²
//     simultaneously in one loop. This is numerically less stable than a
//     two-pass or Welford scheme for ill-conditioned data, but the method
//     and its accumulation order are part of the contract because they are
//     observable in results.

package vector

import "github.com/katalvlaran/cora/numeric"

// Sum returns the arithmetic sum of all elements, accumulated in a single
// left-to-right pass. An empty vector sums to 0.
// Complexity: O(n).
func Sum[T numeric.Float](v Vector[T]) T {
	mustNotNil("Sum", v)
	var acc T
	if d, ok := v.(*Dense[T]); ok {
		for _, x := range d.data { // flat storage, same fixed order
			acc += x
		}
		return acc
	}
	n := v.Len()
	for i := 0; i < n; i++ { // fixed left-to-right order
		acc += v.Get(i)
	}
	return acc
}

// Mean returns Sum(v) / Len(v).
// An empty vector yields 0/0 = NaN per IEEE semantics, mirroring the
// division-by-count definition; it is not an error condition.
// Complexity: O(n).
func Mean[T numeric.Float](v Vector[T]) T {
	mustNotNil("Mean", v)
	return Sum(v) / T(v.Len())
}

// Var returns the population variance via the one-pass accumulator
// mean(x²) − mean(x)²: a single left-to-right loop accumulates Σx and Σx²
// simultaneously, then combines them. Tiny negative results near zero are
// possible from round-off; callers comparing against 0 should tolerate an
// epsilon.
// Complexity: O(n).
func Var[T numeric.Float](v Vector[T]) T {
	mustNotNil("Var", v)
	n := v.Len()
	var mu, sq T // Σx and Σx², gathered in the same pass
	if d, ok := v.(*Dense[T]); ok {
		for _, x := range d.data {
			mu += x
			sq += x * x
		}
	} else {
		var x T
		for i := 0; i < n; i++ { // fixed left-to-right order
			x = v.Get(i)
			mu += x
			sq += x * x
		}
	}
	div := T(n)
	mu /= div
	return sq/div - mu*mu
}

// Std returns the population standard deviation √Var(v).
// Complexity: O(n).
func Std[T numeric.Float](v Vector[T]) T {
	return sqrtT(Var(v))
}

// Unique returns the distinct values present in v. Callers must not depend
// on the order of the result — only on its contents.
// Complexity: O(n) expected time, O(u) memory for u distinct values.
func Unique[T numeric.Float](v Vector[T]) []T {
	mustNotNil("Unique", v)
	n := v.Len()
	seen := make(map[T]struct{}, n)
	out := make([]T, 0, n)
	var x T
	for i := 0; i < n; i++ {
		x = v.Get(i)
		if _, ok := seen[x]; ok {
			continue // already recorded
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
