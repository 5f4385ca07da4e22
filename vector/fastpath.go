// SPDX-License-Identifier: MIT
// Package vector: precision dispatch for the *Dense fast paths.
//
// Purpose:
//   - Route flat-slice work to the viterin/vek SIMD kernels (vek for
//     float64, vek/vek32 for float32) behind a generic facade.
//   - Provide the per-precision scalar helpers (sqrt/abs/pow) the derived
//     algebra needs, evaluated natively in the argument's own precision.
//
// Numeric policy:
//   - Only order-insensitive work is dispatched to SIMD: elementwise
//     arithmetic, dot products and the Euclidean norm. Kernels whose
//     accumulation order is observable (Sum, Var) never route through here.
//   - Empty slices short-circuit before reaching vek.

package vector

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/katalvlaran/cora/numeric"
)

// addSlice computes dst[i] += src[i] over flat storage.
// Lengths are validated by the calling kernel.
func addSlice[T numeric.Float](dst, src []T) {
	if len(dst) == 0 {
		return
	}
	switch d := any(dst).(type) {
	case []float32:
		vek32.Add_Inplace(d, any(src).([]float32))
	case []float64:
		vek.Add_Inplace(d, any(src).([]float64))
	}
}

// subSlice computes dst[i] -= src[i] over flat storage.
func subSlice[T numeric.Float](dst, src []T) {
	if len(dst) == 0 {
		return
	}
	switch d := any(dst).(type) {
	case []float32:
		vek32.Sub_Inplace(d, any(src).([]float32))
	case []float64:
		vek.Sub_Inplace(d, any(src).([]float64))
	}
}

// mulSlice computes dst[i] *= src[i] over flat storage.
func mulSlice[T numeric.Float](dst, src []T) {
	if len(dst) == 0 {
		return
	}
	switch d := any(dst).(type) {
	case []float32:
		vek32.Mul_Inplace(d, any(src).([]float32))
	case []float64:
		vek.Mul_Inplace(d, any(src).([]float64))
	}
}

// divSlice computes dst[i] /= src[i] over flat storage.
// Division by zero follows IEEE semantics (±Inf, NaN) — not a failure.
func divSlice[T numeric.Float](dst, src []T) {
	if len(dst) == 0 {
		return
	}
	switch d := any(dst).(type) {
	case []float32:
		vek32.Div_Inplace(d, any(src).([]float32))
	case []float64:
		vek.Div_Inplace(d, any(src).([]float64))
	}
}

// dotSlice computes the inner product of two equal-length flat slices.
func dotSlice[T numeric.Float](a, b []T) T {
	if len(a) == 0 {
		return 0
	}
	switch x := any(a).(type) {
	case []float32:
		return T(vek32.Dot(x, any(b).([]float32)))
	case []float64:
		return T(vek.Dot(x, any(b).([]float64)))
	}
	return 0 // unreachable: Float is a closed two-member set
}

// normSlice computes the Euclidean norm of a flat slice.
func normSlice[T numeric.Float](v []T) T {
	if len(v) == 0 {
		return 0
	}
	switch x := any(v).(type) {
	case []float32:
		return T(vek32.Norm(x))
	case []float64:
		return T(vek.Norm(x))
	}
	return 0 // unreachable: Float is a closed two-member set
}

// sqrtT evaluates √x natively in the precision of T.
func sqrtT[T numeric.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}
	return x // unreachable: Float is a closed two-member set
}

// absT evaluates |x| natively in the precision of T.
func absT[T numeric.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(math.Abs(v))
	}
	return x // unreachable: Float is a closed two-member set
}

// powT evaluates x^p natively in the precision of T.
func powT[T numeric.Float](x, p T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, any(p).(float32)))
	case float64:
		return T(math.Pow(v, any(p).(float64)))
	}
	return x // unreachable: Float is a closed two-member set
}
