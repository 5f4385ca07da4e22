// Package numeric_test: runnable documentation examples for the
// Real-number contract.
package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/cora/numeric"
)

// ExampleSigmoid demonstrates the logistic function and its exact tail
// saturation for the double-precision instantiation.
func ExampleSigmoid() {
	fmt.Println(numeric.Sigmoid(0.0))   // exact midpoint
	fmt.Println(numeric.Sigmoid(1.0))   // direct computation band
	fmt.Println(numeric.Sigmoid(41.0))  // saturates to exactly 1
	fmt.Println(numeric.Sigmoid(-41.0)) // saturates to exactly 0
	// Output:
	// 0.5
	// 0.7310585786300049
	// 1
	// 0
}

// ExampleLn1pe shows the overflow-safe softplus: above the cutoff the
// argument is returned directly, so huge inputs never overflow.
func ExampleLn1pe() {
	fmt.Println(numeric.Ln1pe(1000.0)) // eˣ would overflow, identity kicks in
	// Output:
	// 1000
}

// ExampleCopysign transfers only the sign bit, keeping the magnitude.
func ExampleCopysign() {
	fmt.Println(numeric.Copysign(3.0, -1.0))
	fmt.Println(numeric.Copysign(-2.5, 10.0))
	// Output:
	// -3
	// 2.5
}
