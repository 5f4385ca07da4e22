// Package failure defines the closed error taxonomy every higher-level
// cora operation uses to report recoverable failures uniformly.
//
// 🚀 What is failure?
//
//	An immutable error value — one Kind from a closed six-member set plus a
//	free-text message:
//	  1. FitFailed           — can not fit an algorithm to data
//	  2. PredictFailed       — can not predict new values
//	  3. TransformFailed     — can not transform data
//	  4. FindFailed          — can not find an item
//	  5. DecompositionFailed — can not decompose a matrix
//	  6. SolutionFailed      — can not solve for X
//
// ✨ Design decisions:
//
//   - Closed enumeration: Kind is a fixed tagged value with stable ordinals
//     1..6 — exhaustive handling is checkable, new kinds are added here and
//     only here, never by subclassing or open strings
//   - Structural equality: two failures are equal iff both kind and message
//     match; errors.Is works out of the box
//   - Lossless serialization: the JSON shape {"kind": n, "message": s}
//     round-trips exactly, and unknown kinds are rejected on decode
//   - Never silently re-kinded: a failure propagates unchanged unless the
//     caller has real context to add — Wrap preserves the cause's message
//     when producing the more specific kind
//
// ⚠️ What failure is NOT for:
//
//	Shape mismatches and out-of-range indices are programmer errors and
//	panic at their source (see the vector package). A Failure is reserved
//	for conditions a caller can meaningfully react to: bad data,
//	non-convergence, a singular matrix.
package failure
