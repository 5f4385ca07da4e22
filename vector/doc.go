// Package vector defines the ordered, fixed-length, mutable numeric
// container every cora algorithm manipulates, plus a complete derived
// algebra over it.
//
// 🚀 What is vector?
//
//	A contract and one concrete implementation:
//	  • Vector[T] — the primitive capability set any backing container
//	    must provide: Get, Set, Len, IsEmpty, Clone, ToSlice
//	  • Dense[T]  — a flat-slice implementation, cache-friendly and
//	    SIMD-accelerated on the hot paths
//	  • Package-level kernels — constructors (Zeros/Ones/Fill/FromSlice),
//	    elementwise arithmetic (pure and in-place), per-element scalar
//	    updates, statistics (Sum/Mean/Var/Std), inner product, norms,
//	    Unique and tolerant equality
//
// ✨ Why derive the algebra once?
//
//   - Every operation beyond the primitive set is implemented exactly one
//     time, generically — so any conforming container behaves bit-for-bit
//     identically to Dense on the scalar paths
//   - Kernels carry a *Dense fast path (contiguous storage, viterin/vek
//     SIMD) and a fixed-order interface fallback; where accumulation order
//     is observable (Sum, Var) only the deterministic scalar loop is used
//
// ⚠️ Failure semantics:
//
//	Nothing in this package returns a recoverable failure. Shape mismatches
//	(unequal lengths in binary ops) and out-of-range indices are programmer
//	errors and PANIC loudly — continuing would silently produce wrong
//	numeric results. Recoverable conditions belong to the failure package
//	and to the estimator layer above.
//
// Concurrency: vectors have single-owner semantics. Reads may be shared;
// in-place mutation requires exclusive access, enforced by the caller, not
// by this package.
//
// See example_test.go for usage patterns.
package vector
