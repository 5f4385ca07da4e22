// SPDX-License-Identifier: MIT
// Package numeric: the Real-number contract — closed precision set and the
// non-transcendental part of the operation set.
//
// Purpose:
//   - Declare the Float type set both precisions plug into.
//   - Provide the exact-constant and bit-level operations (Two, Half, Square,
//     Copysign, ToF32Bits) shared by every algorithm in cora.
//
// Notes:
//   - The set is deliberately closed (no ~ elements): the contract demands
//     total implementations per precision, and the two cases below are the
//     two instantiations this toolkit supports.
//   - Transcendental operations with saturation policy live in stable.go;
//     randomness lives in rand.go.

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the closed set of floating precisions cora is generic over:
// single precision (float32) and double precision (float64). Every generic
// function in this package, and every container in vector, is parameterized
// by this constraint.
type Float interface {
	float32 | float64
}

// Two returns the exact constant 2 in the target precision.
// Complexity: O(1).
func Two[T Float]() T {
	return 2 // exactly representable in both precisions
}

// Half returns the exact constant 0.5 in the target precision.
// Complexity: O(1).
func Half[T Float]() T {
	return 0.5 // a power of two, exactly representable in both precisions
}

// Square returns x·x.
//
// Contract: the result is produced by a single multiplication — never by a
// pow/exp path — so it stays exact wherever the product is representable.
// Complexity: O(1).
func Square[T Float](x T) T {
	return x * x
}

// Copysign returns a value with the magnitude of x and the sign bit of sign,
// matching IEEE-754 copysign semantics exactly: ±0 and ±Inf carry their sign
// bit like any other value, and NaN magnitude propagates.
//
// Determinism: pure bit manipulation per precision; no branches on value.
// Complexity: O(1).
func Copysign[T Float](x, sign T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Copysign(v, any(sign).(float32)))
	case float64:
		return T(math.Copysign(v, any(sign).(float64)))
	}
	return x // unreachable: Float is a closed two-member set
}

// ToF32Bits returns the raw bit pattern of x truncated/reinterpreted to a
// 32-bit representation. float32 values yield their exact IEEE-754 bits;
// float64 values yield the low 32 bits of their 64-bit pattern.
//
// The result is intended for hashing and bucketing, not for reconstructing
// the original value.
// Complexity: O(1).
func ToF32Bits[T Float](x T) uint32 {
	switch v := any(x).(type) {
	case float32:
		return math.Float32bits(v)
	case float64:
		return uint32(math.Float64bits(v)) // low 32 bits of the mantissa
	}
	return 0 // unreachable: Float is a closed two-member set
}
