// Package numeric pins down the exact floating-point semantics that every
// algorithm in cora is generic over.
//
// 🚀 What is numeric?
//
//	The Real-number contract: a closed type set (Float = float32 | float64)
//	plus the operation set every conforming precision must provide:
//	  • Copysign — IEEE-exact sign transfer (±0 and ±Inf included)
//	  • Ln1pe    — the softplus ln(1+eˣ), overflow-safe by construction
//	  • Sigmoid  — the logistic 1/(1+e⁻ˣ), saturating exactly at the tails
//	  • Rand     — uniform [0,1) from the process-wide generator
//	  • Two/Half — exact constants in the target precision
//	  • Square   — x·x, guaranteed to never take a transcendental path
//	  • ToF32Bits — raw 32-bit pattern for hashing/bucketing
//
// ✨ Why a contract instead of raw floats?
//
//   - Swapping float32 for float64 changes performance, never results
//     (beyond what the precision can represent)
//   - Saturation thresholds are part of the contract, not tunables:
//     sigmoid clamps outside ±40, softplus short-circuits above 15
//   - float32 paths run natively in single precision (chewxy/math32),
//     they are not float64 computations rounded after the fact
//
// Go cannot attach methods to primitive types, so the contract is expressed
// as a type-class: a constraint plus package-level generic functions. Any
// code written against numeric.Float works identically for both precisions.
//
// None of these operations can fail recoverably: NaN and ±Inf inputs
// propagate through standard IEEE semantics.
package numeric
