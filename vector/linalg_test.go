// Package vector_test: inner product, norms and tolerant equality — checked
// against gonum/floats as an independent oracle where one exists.
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cora/vector"
)

// TestDotConcrete pins a hand-checkable inner product.
func TestDotConcrete(t *testing.T) {
	a := vector.FromSlice([]float64{1, 2, 3})
	b := vector.FromSlice([]float64{4, 5, 6})
	require.Equal(t, 32.0, vector.Dot[float64](a, b)) // 4+10+18
}

// TestDotAgainstGonum cross-checks the SIMD fast path against the gonum
// reference implementation on longer data.
func TestDotAgainstGonum(t *testing.T) {
	n := 257 // odd length to exercise SIMD tail handling
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = math.Sin(float64(i)) // deterministic, well-spread payload
		b[i] = math.Cos(float64(i) / 2)
	}

	got := vector.Dot[float64](vector.FromSlice(a), vector.FromSlice(b))
	require.InDelta(t, floats.Dot(a, b), got, 1e-9)
}

// TestNorm2MatchesDot verifies Norm2(v) == √(v·v) within floating tolerance
// on both the fast path and the fallback.
func TestNorm2MatchesDot(t *testing.T) {
	data := []float64{3, 4, 12}
	dense := vector.FromSlice(data)

	want := math.Sqrt(vector.Dot[float64](dense, dense)) // 13 for this triple
	require.InDelta(t, want, vector.Norm2[float64](dense), 1e-12)
	require.InDelta(t, want, vector.Norm2[float64](box(data)), 1e-12)
	require.InDelta(t, floats.Norm(data, 2), vector.Norm2[float64](dense), 1e-12) // independent oracle
}

// TestNormOrders exercises the general p-norm for integer, fractional and
// infinite orders.
func TestNormOrders(t *testing.T) {
	data := []float64{-3, 4, -12}
	v := vector.FromSlice(data)

	require.InDelta(t, 19.0, vector.Norm[float64](v, 1), 1e-12)                      // L1: 3+4+12
	require.InDelta(t, 13.0, vector.Norm[float64](v, 2), 1e-12)                      // L2: classic 3-4-12
	require.InDelta(t, floats.Norm(data, 3.5), vector.Norm[float64](v, 3.5), 1e-12)  // non-integer order
	require.Equal(t, 12.0, vector.Norm[float64](v, math.Inf(1)))                     // max |x|
	require.Equal(t, 3.0, vector.Norm[float64](v, math.Inf(-1)))                     // min |x|
}

// TestNormEmpty pins the degenerate cases on a zero-length vector.
func TestNormEmpty(t *testing.T) {
	e := vector.Zeros[float64](0)
	require.Equal(t, 0.0, vector.Norm2[float64](e))
	require.Equal(t, 0.0, vector.Norm[float64](e, math.Inf(1)))
}

// TestApproxEqual covers the tolerant-equality contract: per-element bound,
// boundary inclusion (≤ eps), and length mismatch returning false.
func TestApproxEqual(t *testing.T) {
	a := vector.FromSlice([]float64{1.0, 2.0})
	b := vector.FromSlice([]float64{1.05, 1.95})

	require.True(t, vector.ApproxEqual[float64](a, b, 0.05))  // every |diff| ≤ eps
	require.False(t, vector.ApproxEqual[float64](a, b, 0.04)) // 0.05 > 0.04 fails

	short := vector.FromSlice([]float64{1.0})
	require.False(t, vector.ApproxEqual[float64](a, short, 1e9)) // length mismatch is false, not panic

	require.True(t, vector.ApproxEqual[float64](a, a.Clone(), 0)) // exact self-equality at eps 0
}

// TestFloat32Norms spot-checks the single-precision instantiation.
func TestFloat32Norms(t *testing.T) {
	v := vector.FromSlice([]float32{3, 4})
	require.InDelta(t, 5.0, float64(vector.Norm2[float32](v)), 1e-6)
	require.Equal(t, float32(4), vector.Norm[float32](v, float32(math.Inf(1))))
}
