package probe_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/laplace/potential"
	"github.com/katalvlaran/laplace/probe"
	"github.com/stretchr/testify/require"
)

// TestSampleLattice checks sample positions and CSV layout.
func TestSampleLattice(t *testing.T) {
	g, err := probe.Sample(plane{}, 4, 2, 4, 2)
	require.NoError(t, err)
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 0.0, g.At(0, 0))
	require.Equal(t, 13.0, g.At(3, 1))

	lo, hi := g.Range()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 13.0, hi)

	var buf bytes.Buffer
	require.NoError(t, g.WriteCSV(&buf))
	require.Equal(t, "0,1,2,3\n10,11,12,13\n", buf.String())
}

// TestSampleFractionalStep uses a scale that does not divide evenly.
func TestSampleFractionalStep(t *testing.T) {
	g, err := probe.Sample(plane{}, 1, 1, 4, 1)
	require.NoError(t, err)
	require.Equal(t, 0.25, g.At(1, 0))
	require.Equal(t, 0.75, g.At(3, 0))
}

// TestSampleRejectsBadInput covers resolution and extent validation.
func TestSampleRejectsBadInput(t *testing.T) {
	_, err := probe.Sample(plane{}, 4, 4, 0, 3)
	require.ErrorIs(t, err, probe.ErrBadResolution)
	_, err = probe.Sample(plane{}, 4, 4, 3, -1)
	require.ErrorIs(t, err, probe.ErrBadResolution)
	_, err = probe.Sample(plane{}, -4, 4, 3, 3)
	require.ErrorIs(t, err, probe.ErrBadExtent)
	_, err = probe.Sample(plane{}, 4, math.NaN(), 3, 3)
	require.ErrorIs(t, err, probe.ErrBadExtent)
}

// TestGridAtPanicsOutOfRange mirrors slice indexing.
func TestGridAtPanicsOutOfRange(t *testing.T) {
	g, err := probe.Sample(plane{}, 1, 1, 2, 2)
	require.NoError(t, err)
	require.Panics(t, func() { g.At(2, 0) })
	require.Panics(t, func() { g.At(0, -1) })
}

// TestNormalize maps samples into [0,1] with clamping.
func TestNormalize(t *testing.T) {
	g, err := probe.Sample(plane{}, 4, 2, 4, 2)
	require.NoError(t, err)

	n := g.Normalize(0, 10)
	require.Equal(t, 0.0, n.At(0, 0))
	require.Equal(t, 0.3, n.At(3, 0))
	require.Equal(t, 1.0, n.At(0, 1)) // exactly hi
	require.Equal(t, 1.0, n.At(3, 1)) // clamped
	require.Equal(t, 3.0, g.At(3, 0)) // source untouched
}

// TestInverseLerp covers inside, clamping and a degenerate range.
func TestInverseLerp(t *testing.T) {
	require.Equal(t, 0.5, probe.InverseLerp(0, 10, 5))
	require.Equal(t, 0.0, probe.InverseLerp(0, 10, -3))
	require.Equal(t, 1.0, probe.InverseLerp(0, 10, 12))
	require.Equal(t, 0.75, probe.InverseLerp(10, 0, 2.5)) // reversed range
	require.Equal(t, 0.0, probe.InverseLerp(4, 4, 9))
}

// TestSampleSolvedField samples a real field; node-aligned samples equal
// the node values and the far edge reads as the 0.0 sentinel.
func TestSampleSolvedField(t *testing.T) {
	f, err := potential.New(20, 16, potential.WithIterations(200))
	require.NoError(t, err)
	require.NoError(t, f.SetFixedPoint(1, 8, 10))
	require.NoError(t, f.SetFixedPoint(19, 8, 0))
	f.CalculatePotential()

	g, err := probe.Sample(f, 20, 16, 40, 32)
	require.NoError(t, err)

	// Sample (2,16) lands on node (1,8).
	require.Equal(t, 10.0, g.At(2, 16))
	// Sample (38,16) lands on node (19,8).
	require.Equal(t, 0.0, g.At(38, 16))

	lo, hi := g.Range()
	require.GreaterOrEqual(t, lo, 0.0)
	require.LessOrEqual(t, hi, 10.0)
}
