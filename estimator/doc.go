// Package estimator defines the capability contracts every cora model
// implements: how models are trained (Fit) and queried (Predict/Transform).
//
// 🚀 What is estimator?
//
//	Stateless shape definitions, generic over three independent type
//	parameters — a matrix type M, a fit-parameter type P and an error type
//	E — plus the fitted type itself:
//	  • Estimator[Self, M, P, E] — Fit(x, y, params) → (fitted Self, E)
//	  • Classifier[M, E]         — Predict(x) → (M, E)
//	  • Regressor[M, E]          — Predict(x) → (M, E)
//	  • Transformer[M, E]        — Transform(x) → (M, E)
//
// ✨ Design decisions:
//
//   - Capability sets, not a base type: classifier and regressor families
//     share no state, only a method shape, so they are distinguished by
//     which contracts they implement — never by embedding a common struct
//   - Self-typed fitting: Fit returns a new fitted instance of the model's
//     own type; whether training data is retained is each implementer's
//     choice
//   - The error parameter is conventionally *failure.Error with kind
//     FitFailed or PredictFailed, but any error type satisfies the contract
//
// Matrix types are deliberately unconstrained here: this layer consumes
// them as opaque values (they are built from vectors of Real numbers by
// concrete implementations elsewhere, e.g. gonum's mat.Dense).
//
// See example_test.go for a complete model implementing all three
// contracts.
package estimator
