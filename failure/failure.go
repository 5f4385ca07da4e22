// SPDX-License-Identifier: MIT
// Package failure: the immutable Error value, its constructors and its
// lossless JSON shape.
//
// Purpose:
//   - Construct failures at the point an operation cannot complete.
//   - Propagate them upward unchanged (values are immutable after
//     construction: unexported fields, accessor methods only).
//   - Serialize/deserialize without losing the kind or the message.

package failure

import (
	"encoding/json"
	"errors"
)

// ErrUnknownKind is returned when deserialization encounters a kind ordinal
// outside the closed set. The taxonomy never grows at runtime.
var ErrUnknownKind = errors.New("failure: unknown failure kind")

// Error is an immutable recoverable-failure value: one Kind plus a
// free-text message. It implements the standard error interface and
// structural equality via Is.
type Error struct {
	kind Kind   // which operation family failed; closed set
	msg  string // human context, preserved verbatim through propagation
}

// Fit constructs a FitFailed failure with the given message.
func Fit(msg string) *Error {
	return &Error{kind: FitFailed, msg: msg}
}

// Predict constructs a PredictFailed failure with the given message.
func Predict(msg string) *Error {
	return &Error{kind: PredictFailed, msg: msg}
}

// Transform constructs a TransformFailed failure with the given message.
func Transform(msg string) *Error {
	return &Error{kind: TransformFailed, msg: msg}
}

// Because constructs a failure of an explicit kind; use it for the kinds
// without a dedicated constructor (FindFailed, DecompositionFailed,
// SolutionFailed). Passing a kind outside the closed set is a programmer
// error and panics.
func Because(kind Kind, msg string) *Error {
	if !kind.valid() {
		panic("failure: Because: kind outside the closed set")
	}
	return &Error{kind: kind, msg: msg}
}

// Wrap constructs a failure of a more specific kind while preserving the
// cause's message as context, per the propagation policy: a failure is
// never silently re-kinded, so the original text must survive. A nil cause
// degenerates to Because(kind, context).
func Wrap(kind Kind, context string, cause error) *Error {
	if cause == nil {
		return Because(kind, context)
	}
	return Because(kind, context+": "+cause.Error())
}

// Kind returns which operation family failed.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the free-text message, verbatim.
func (e *Error) Message() string {
	return e.msg
}

// Error formats the failure as "<kind-text>: <message>".
func (e *Error) Error() string {
	return e.kind.String() + ": " + e.msg
}

// Is implements structural equality for errors.Is: two failures match iff
// both the kind and the message are identical.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.kind == t.kind && e.msg == t.msg
}

// Equal reports structural equality against another failure value.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.kind == other.kind && e.msg == other.msg
}

// envelope is the stable serialized shape consumed by logging/reporting
// collaborators: an integer tag (stable ordinals 1..6) plus the message.
type envelope struct {
	Kind    uint8  `json:"kind"`
	Message string `json:"message"`
}

// MarshalJSON serializes the failure losslessly as
// {"kind": <1..6>, "message": "<msg>"}.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(envelope{Kind: uint8(e.kind), Message: e.msg})
}

// UnmarshalJSON restores a failure from its serialized shape, rejecting
// ordinals outside the closed set with ErrUnknownKind.
func (e *Error) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	k := Kind(env.Kind)
	if !k.valid() {
		return ErrUnknownKind
	}
	e.kind = k
	e.msg = env.Message
	return nil
}
