// SPDX-License-Identifier: MIT
// Package vector: shape validators (unified, consistent).
// This file defines ONLY the panicking contract guards used across the
// package kernels. Shape violations (nil operands, mismatched lengths)
// are programmer errors: the kernels abort loudly instead of returning a
// recoverable failure. Recoverable conditions never originate here; they
// belong to the failure package.

package vector

import (
	"fmt"

	"github.com/katalvlaran/cora/numeric"
)

// Operation name constants for unified panic messages and reducing magic
// strings in kernels.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opDivInPlace = "DivInPlace"
	opDot        = "Dot"
)

// mustSameLen aborts with a descriptive panic unless a and b are non-nil
// vectors of identical length. Every binary kernel calls this first, so the
// "op" tag always names the public operation the caller invoked.
// Complexity: O(1).
func mustSameLen[T numeric.Float](op string, a, b Vector[T]) {
	if a == nil || b == nil {
		panic("vector: " + op + ": nil vector") // nil operand is always a bug
	}
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("vector: %s: length mismatch (%d vs %d)", op, a.Len(), b.Len()))
	}
}

// mustNotNil aborts with a descriptive panic when v is nil.
// Complexity: O(1).
func mustNotNil[T numeric.Float](op string, v Vector[T]) {
	if v == nil {
		panic("vector: " + op + ": nil vector")
	}
}
