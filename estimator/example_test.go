// Package estimator_test: a complete worked model — a mean regressor over
// gonum matrices — demonstrating how concrete types satisfy the capability
// contracts with *failure.Error as the failure channel.
package estimator_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cora/estimator"
	"github.com/katalvlaran/cora/failure"
)

// meanParams carries the (single) hyperparameter of the toy model.
type meanParams struct {
	// Shrink pulls the learned mean toward zero by the given factor in
	// [0,1); 0 disables shrinkage.
	Shrink float64
}

// meanRegressor predicts the (optionally shrunk) mean of the training
// targets for every query row. It retains no training data.
type meanRegressor struct {
	mean   float64
	fitted bool
}

// compile-time contract checks: the model satisfies Estimator and Regressor.
var (
	_ estimator.Estimator[meanRegressor, *mat.Dense, meanParams, *failure.Error] = meanRegressor{}
	_ estimator.Regressor[*mat.Dense, *failure.Error]                            = meanRegressor{}
)

// Fit learns the target mean. x is accepted for shape symmetry with real
// models; only y participates.
func (meanRegressor) Fit(x, y *mat.Dense, params meanParams) (meanRegressor, *failure.Error) {
	if x == nil || y == nil {
		return meanRegressor{}, failure.Fit("nil training data")
	}
	rows, _ := y.Dims()
	if rows == 0 {
		return meanRegressor{}, failure.Fit("no training rows")
	}
	if params.Shrink < 0 || params.Shrink >= 1 {
		return meanRegressor{}, failure.Fit("shrink factor outside [0,1)")
	}

	var sum float64
	for i := 0; i < rows; i++ {
		sum += y.At(i, 0)
	}
	mean := sum / float64(rows) * (1 - params.Shrink)
	return meanRegressor{mean: mean, fitted: true}, nil
}

// Predict emits the learned mean once per query row.
func (m meanRegressor) Predict(x *mat.Dense) (*mat.Dense, *failure.Error) {
	if !m.fitted {
		return nil, failure.Predict("model is not fitted")
	}
	if x == nil {
		return nil, failure.Predict("nil query features")
	}
	rows, _ := x.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, m.mean)
	}
	return out, nil
}

// Example_meanRegressor trains the toy model and queries it, showing the
// success path and both failure kinds of the convention.
func Example_meanRegressor() {
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	model, ferr := meanRegressor{}.Fit(x, y, meanParams{})
	if ferr != nil {
		fmt.Println(ferr)
		return
	}

	pred, perr := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
	if perr != nil {
		fmt.Println(perr)
		return
	}
	fmt.Println(pred.At(0, 0), pred.At(1, 0))

	// an unfitted model reports through the failure channel
	_, perr = meanRegressor{}.Predict(x)
	fmt.Println(perr)
	// Output:
	// 5 5
	// Predict failed: model is not fitted
}
