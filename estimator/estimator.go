// SPDX-License-Identifier: MIT
// Package estimator: the Fit/Predict/Transform capability contracts.
//
// Purpose:
//   - Declare the polymorphic method shapes concrete models satisfy to
//     participate in generic pipelines. No logic lives here: contracts
//     only, so the file stays a single source of truth for signatures.
//
// Notes:
//   - Go interfaces cannot name "the implementing type", so the fitted
//     result type is an explicit Self parameter: a model type Model
//     implements Estimator[Model, M, P, E].
//   - E is constrained to error so failures compose with errors.Is/As;
//     the conventional choice is *failure.Error.

package estimator

// Estimator is the training contract. Fit consumes training features x,
// targets y and algorithm-specific hyperparameters, returning a new fitted
// instance of the model's own type on success.
//
// Contract:
//   - On failure the returned E is conventionally a *failure.Error with
//     kind FitFailed; the Self value is then meaningless.
//   - Ownership of the training data is not retained by contract — whether
//     a concrete model copies, references or discards x and y is its own
//     documented choice.
type Estimator[Self, M, P any, E error] interface {
	Fit(x, y M, params P) (Self, E)
}

// Classifier is the querying contract for classification families: a
// fitted model maps query features x to predicted class labels, returned
// as a matrix of the same shape family as the training targets.
//
// Failures are conventionally *failure.Error with kind PredictFailed.
type Classifier[M any, E error] interface {
	Predict(x M) (M, E)
}

// Regressor is the querying contract for regression families: a fitted
// model maps query features x to predicted continuous values.
//
// The shape is identical to Classifier by design — the families are
// distinguished by which contract a model documents itself as
// implementing and by the value semantics of the output, not by type
// structure.
type Regressor[M any, E error] interface {
	Predict(x M) (M, E)
}

// Transformer is the contract for data transformations (scaling,
// projection, encoding): a fitted transformer maps an input matrix to a
// transformed matrix of the same shape family.
//
// Failures are conventionally *failure.Error with kind TransformFailed.
type Transformer[M any, E error] interface {
	Transform(x M) (M, E)
}
