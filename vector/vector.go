// SPDX-License-Identifier: MIT
// Package vector: the Vector contract — primitive capability set and
// constructors.
//
// Purpose:
//   - Declare the minimal primitive set every backing container implements.
//   - Provide the canonical constructors, all returning *Dense.
//
// Notes:
//   - Everything beyond the primitives (arithmetic, statistics, norms,
//     equality) is derived generically in the kernel files of this package
//     and works for ANY Vector implementation, with *Dense fast paths.

package vector

import "github.com/katalvlaran/cora/numeric"

// Vector is the primitive capability set of the contract: an ordered,
// fixed-length, mutable sequence of Real numbers indexed from 0.
//
// Contract:
//   - Every index in [0, Len()) addresses exactly one element.
//   - Out-of-range access is a programmer error: implementations must panic,
//     never return a recoverable failure.
//   - Clone returns an independent deep copy (no shared storage).
//   - ToSlice returns a fresh slice of the elements in order.
type Vector[T numeric.Float] interface {
	// Get returns the element at index i. Panics if i is out of range.
	Get(i int) T

	// Set assigns x to the element at index i. Panics if i is out of range.
	Set(i int, x T)

	// Len reports the fixed number of elements.
	Len() int

	// IsEmpty reports whether the vector has zero elements.
	IsEmpty() bool

	// Clone returns an independent deep copy of the vector.
	Clone() Vector[T]

	// ToSlice returns the elements as a newly allocated slice, preserving
	// order and exact values.
	ToSlice() []T
}

// Zeros returns a new Dense vector of n elements, all zero.
// Negative n is a programmer error and panics (runtime make).
// Complexity: O(n).
func Zeros[T numeric.Float](n int) *Dense[T] {
	return &Dense[T]{data: make([]T, n)} // zero value of T is the additive identity
}

// Ones returns a new Dense vector of n elements, all one.
// Complexity: O(n).
func Ones[T numeric.Float](n int) *Dense[T] {
	return Fill[T](n, 1)
}

// Fill returns a new Dense vector of n elements, each set to value.
// Complexity: O(n).
func Fill[T numeric.Float](n int, value T) *Dense[T] {
	v := &Dense[T]{data: make([]T, n)}
	for i := range v.data { // fixed order, though every slot gets the same value
		v.data[i] = value
	}
	return v
}

// FromSlice returns a new Dense vector holding a copy of src, preserving
// order and exact values. The input slice is never retained: the vector
// exclusively owns its storage.
// Complexity: O(n).
func FromSlice[T numeric.Float](src []T) *Dense[T] {
	data := make([]T, len(src))
	copy(data, src) // exact bitwise copy; no conversion, no reordering
	return &Dense[T]{data: data}
}
