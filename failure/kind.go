// SPDX-License-Identifier: MIT
// Package failure: the closed FailedError enumeration.
// This file defines ONLY the Kind tag set and its fixed human strings.
// The ordinals are stable wire values (1..6) consumed by logging and
// reporting collaborators; never renumber them.

package failure

// Kind identifies which operation family failed. The set is closed: valid
// values are exactly the six constants below, with stable ordinals 1..6.
type Kind uint8

const (
	// FitFailed reports that an algorithm could not be fitted to data.
	FitFailed Kind = iota + 1
	// PredictFailed reports that new values could not be predicted.
	PredictFailed
	// TransformFailed reports that data could not be transformed.
	TransformFailed
	// FindFailed reports that an item could not be found.
	FindFailed
	// DecompositionFailed reports that a matrix could not be decomposed.
	DecompositionFailed
	// SolutionFailed reports that a system could not be solved for X.
	SolutionFailed
)

// String returns the fixed human-readable text for the kind. These strings
// are part of the display contract ("<kind-text>: <message>") and must not
// drift.
func (k Kind) String() string {
	switch k {
	case FitFailed:
		return "Fit failed"
	case PredictFailed:
		return "Predict failed"
	case TransformFailed:
		return "Transform failed"
	case FindFailed:
		return "Find failed"
	case DecompositionFailed:
		return "Decomposition failed"
	case SolutionFailed:
		return "Can not find solution"
	default:
		return "Unknown failure" // unreachable through the package constructors
	}
}

// valid reports whether k is a member of the closed set.
func (k Kind) valid() bool {
	return k >= FitFailed && k <= SolutionFailed
}
