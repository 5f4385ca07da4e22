// Package vector_test contains unit tests for the Dense implementation of
// the Vector contract: constructors, element access, cloning and the
// panic-on-violation regime.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cora/vector"
)

// TestZerosOnesFill verifies the three value constructors.
func TestZerosOnesFill(t *testing.T) {
	z := vector.Zeros[float64](4) // four zero elements
	require.Equal(t, 4, z.Len())
	for i := 0; i < z.Len(); i++ {
		require.Equal(t, 0.0, z.Get(i)) // every slot is the additive identity
	}

	o := vector.Ones[float64](3)
	for i := 0; i < o.Len(); i++ {
		require.Equal(t, 1.0, o.Get(i)) // every slot is exactly one
	}

	f := vector.Fill(2, 2.5)
	require.Equal(t, 2.5, f.Get(0))
	require.Equal(t, 2.5, f.Get(1))
}

// TestFromSliceCopies ensures FromSlice preserves order and exact values
// and never aliases the caller's slice.
func TestFromSliceCopies(t *testing.T) {
	src := []float64{1.5, -2.25, 3.0}
	v := vector.FromSlice(src)

	require.Equal(t, len(src), v.Len())
	for i, want := range src {
		require.Equal(t, want, v.Get(i)) // exact values in order
	}

	src[0] = 99 // mutate the caller's slice
	require.Equal(t, 1.5, v.Get(0)) // the vector must not observe it
}

// TestToSliceRoundTrip pins the round-trip property: rebuilding a vector
// from its own ToSlice yields an exactly equal vector (eps = 0).
func TestToSliceRoundTrip(t *testing.T) {
	v := vector.FromSlice([]float64{0.1, 0.2, 0.30000000000000004})
	rebuilt := vector.FromSlice(v.ToSlice())
	require.True(t, vector.ApproxEqual[float64](v, rebuilt, 0)) // bit-exact round trip
}

// TestGetSet validates element mutation in place.
func TestGetSet(t *testing.T) {
	v := vector.Zeros[float64](3)
	v.Set(1, 7.89)                  // write middle element
	require.Equal(t, 7.89, v.Get(1)) // read it back
	require.Equal(t, 0.0, v.Get(0)) // neighbors untouched
	require.Equal(t, 0.0, v.Get(2))
}

// TestOutOfRangePanics asserts the non-recoverable regime: out-of-range
// access panics, it never returns a failure.
func TestOutOfRangePanics(t *testing.T) {
	v := vector.Zeros[float64](2)
	require.Panics(t, func() { v.Get(2) })     // one past the end
	require.Panics(t, func() { v.Get(-1) })    // negative index
	require.Panics(t, func() { v.Set(5, 1.0) }) // far out of range
}

// TestCloneIndependence ensures Clone returns a deep copy that does not
// share storage with the original (single-owner semantics).
func TestCloneIndependence(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2})
	c := v.Clone()

	c.Set(0, 42) // mutate the clone only
	require.Equal(t, 1.0, v.Get(0)) // original remains unchanged
	require.Equal(t, 42.0, c.Get(0))
}

// TestIsEmpty verifies the emptiness predicate on both cases.
func TestIsEmpty(t *testing.T) {
	require.True(t, vector.Zeros[float64](0).IsEmpty())
	require.False(t, vector.Zeros[float64](1).IsEmpty())
}

// TestStringOutput checks the debug formatting.
func TestStringOutput(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2.5, -3})
	require.Equal(t, "[1, 2.5, -3]", v.String())
	require.Equal(t, "[]", vector.Zeros[float64](0).String())
}

// TestFloat32Instantiation exercises the single-precision container: the
// same contract must hold with no behavioral difference beyond precision.
func TestFloat32Instantiation(t *testing.T) {
	v := vector.FromSlice([]float32{1, 2, 3})
	require.Equal(t, 3, v.Len())
	require.Equal(t, float32(2), v.Get(1))

	c := v.Clone()
	c.Set(1, 9)
	require.Equal(t, float32(2), v.Get(1)) // deep copy holds for float32 too
}
