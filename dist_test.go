package ashrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNormal_MomentsMatch estimates mean and standard deviation from a
// large sample.
func TestNormal_MomentsMatch(t *testing.T) {
	g := NewXoshiro256SSSeeded(100)
	const draws = 200000
	const mean, stddev = 5.0, 2.0

	var sum, sumSq float64
	for i := 0; i < draws; i++ {
		v := Normal(g, mean, stddev)
		sum += v
		sumSq += v * v
	}
	gotMean := sum / draws
	gotVar := sumSq/draws - gotMean*gotMean

	require.InDelta(t, mean, gotMean, 0.05)
	require.InDelta(t, stddev, math.Sqrt(gotVar), 0.05)
}

// TestNormal_Symmetry: roughly half the mass falls on either side of the
// mean.
func TestNormal_Symmetry(t *testing.T) {
	g := NewWyrandSeeded(200)
	above := 0
	const draws = 100000
	for i := 0; i < draws; i++ {
		if Normal(g, 0, 1) > 0 {
			above++
		}
	}
	require.InDelta(t, draws/2, above, draws/20)
}

func TestTriangular_StaysInBounds(t *testing.T) {
	g := NewSFC64Seeded(300)
	for i := 0; i < 100000; i++ {
		v := Triangular(g, 2, 8)
		require.GreaterOrEqual(t, v, 2.0)
		require.LessOrEqual(t, v, 8.0)
	}
}

// TestTriangularMode_MeanMatches: the triangular mean is
// (min+max+mode)/3.
func TestTriangularMode_MeanMatches(t *testing.T) {
	g := NewXoroshiro128PPSeeded(400)
	const draws = 200000
	const min, max, mode = 0.0, 10.0, 2.0

	var sum float64
	for i := 0; i < draws; i++ {
		sum += TriangularMode(g, min, max, mode)
	}
	require.InDelta(t, (min+max+mode)/3, sum/draws, 0.05)
}

func TestTriangularMode_EdgeParameters(t *testing.T) {
	// Degenerate span returns the single point without dividing by zero.
	require.Equal(t, 4.0, TriangularMode(NewMaxRandom(), 4, 4, 4))

	// Inverted bounds are accepted.
	g := NewJSF64Seeded(500)
	for i := 0; i < 10000; i++ {
		v := Triangular(g, 8, 2)
		require.GreaterOrEqual(t, v, 2.0)
		require.LessOrEqual(t, v, 8.0)
	}

	// Mode outside the interval is clamped, not an error.
	for i := 0; i < 10000; i++ {
		v := TriangularMode(g, 0, 1, 5)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}
