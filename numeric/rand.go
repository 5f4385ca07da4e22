// SPDX-License-Identifier: MIT
// Package numeric: process-wide randomness for the Real-number contract.

package numeric

import "math/rand"

// Rand returns a pseudorandom value uniformly distributed in [0, 1) in the
// target precision, sourced from the process-wide generator.
//
// Contract:
//   - Safe to call concurrently from multiple goroutines (the math/rand
//     top-level generator is goroutine-safe).
//   - No reproducibility or seeding guarantee: the generator is shared and
//     auto-seeded; callers needing deterministic streams must own their own
//     source outside this contract.
//
// Complexity: O(1).
func Rand[T Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(rand.Float32())
	default:
		return T(rand.Float64())
	}
}
