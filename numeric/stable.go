// SPDX-License-Identifier: MIT
// Package numeric: overflow-safe transcendental operations.
//
// Purpose:
//   - Implement the saturating sigmoid and softplus kernels whose thresholds
//     are part of the Real-number contract, not tunables.
//
// Numeric policy:
//   - Sigmoid saturates exactly to 0 below -40 and to 1 above +40: outside
//     that band the true value underflows/overflows to 0/1 at both
//     precisions anyway, and short-circuiting avoids evaluating e⁻ˣ for
//     arguments that would overflow.
//   - Softplus returns x directly above 15: beyond that point ln(1+eˣ)
//     agrees with x to within machine precision, and eˣ would overflow
//     float32 long before the identity stops holding.
//   - float32 arguments are evaluated natively in single precision via
//     chewxy/math32; float64 via the stdlib. Results therefore carry the
//     rounding of their own precision, never a double rounding.

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Saturation thresholds of the contract. These are part of the operation
// set, not tunables: changing them changes observable results.
const (
	sigmoidLo      = -40 // below: e⁻ˣ overflows, true sigmoid underflows to 0
	sigmoidHi      = 40  // above: e⁻ˣ underflows, true sigmoid rounds to 1
	softplusCutoff = 15  // above: ln(1+eˣ) == x to within machine precision
)

// Sigmoid computes the logistic function S(x) = 1/(1+e⁻ˣ).
//
// Behavior highlights:
//   - x < -40 → exactly 0; x > 40 → exactly 1; Sigmoid(0) == 0.5.
//   - Finite inputs can never produce NaN or overflow.
//   - NaN propagates (both comparisons are false, e⁻ᴺᵃᴺ is NaN).
//
// Determinism: one branch per tail, one Exp and one division in the band.
// Complexity: O(1).
func Sigmoid[T Float](x T) T {
	if x < sigmoidLo {
		return 0 // true value underflows; saturate exactly
	}
	if x > sigmoidHi {
		return 1 // true value rounds to 1; saturate exactly
	}
	switch v := any(x).(type) {
	case float32:
		return T(1 / (1 + math32.Exp(-v)))
	case float64:
		return T(1 / (1 + math.Exp(-v)))
	}
	return 0 // unreachable: Float is a closed two-member set
}

// Ln1pe computes the softplus function ln(1+eˣ) without overflow.
//
// Behavior highlights:
//   - x > 15 → returns x directly (the identity holds to machine precision).
//   - Otherwise computed as Log1p(Exp(x)) in the argument's own precision.
//   - Monotonically increasing over all finite inputs; NaN propagates.
//
// Complexity: O(1).
func Ln1pe[T Float](x T) T {
	if x > softplusCutoff {
		return x // avoid evaluating eˣ where it would overflow
	}
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log1p(math32.Exp(v)))
	case float64:
		return T(math.Log1p(math.Exp(v)))
	}
	return x // unreachable: Float is a closed two-member set
}
