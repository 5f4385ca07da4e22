// Package cora is the numeric and linear-algebra foundation for building
// machine-learning estimators in Go — one set of contracts, any precision,
// any backing container.
//
// 🚀 What is cora?
//
//	A small, deterministic contract layer that higher-level estimators
//	(classifiers, regressors, decomposition routines) are written against:
//		• Real numbers: exact semantics for float32/float64 — stable
//		  sigmoid & softplus, IEEE copysign, bit introspection, randomness
//		• Vectors: a complete algebra (arithmetic, statistics, norms,
//		  tolerant equality) over any conforming container
//		• Failures: a closed, serializable error taxonomy shared by every
//		  fit / predict / transform / decomposition operation
//		• Estimators: Fit/Predict capability contracts, generic over the
//		  matrix, parameter and error types
//
// ✨ Why choose cora?
//
//   - Precision-agnostic – swap float32 for float64 and only performance
//     changes, never results (beyond representable precision)
//   - Container-agnostic – the vector algebra is derived once from a tiny
//     primitive set, so every implementation behaves identically
//   - Fast by default – SIMD-accelerated kernels behind the dense paths,
//     deterministic scalar loops everywhere accumulation order matters
//   - Loud on bugs – shape violations panic, they never masquerade as
//     recoverable failures
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/   — the Real-number contract and its two precision instantiations
//	vector/    — the Vector contract, Dense implementation and derived algebra
//	failure/   — the closed FailedError taxonomy with lossless serialization
//	estimator/ — Fit/Predict/Transform capability contracts for models
//
// Quick sketch of the control flow:
//
//	data (vector of Real) ──▶ estimator.Fit ──▶ fitted model ──▶ Predict
//	                                │                               │
//	                                └──── *failure.Error ◀──────────┘
//
// Dive into each package's doc.go for contracts, determinism notes and
// worked examples.
//
//	go get github.com/katalvlaran/cora
package cora
