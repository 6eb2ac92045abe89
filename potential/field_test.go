// Package potential_test contains unit tests for Field construction,
// fixed-point bookkeeping and read accessors.
package potential_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/laplace/potential"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimension ensures New rejects negative, non-finite and
// oversized extents.
func TestNewInvalidDimension(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"negative width", -1, 4},
		{"negative height", 4, -0.5},
		{"NaN width", math.NaN(), 4},
		{"infinite height", 4, math.Inf(1)},
		{"huge width", 1e19, 1},
		{"huge height", 1, float64(math.MaxInt64)},
		{"too many nodes", 1 << 16, 1 << 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := potential.New(tc.w, tc.h)
			require.ErrorIs(t, err, potential.ErrInvalidDimension)
			require.Nil(t, f)
		})
	}
}

// TestCheckSizeLimit accepts exactly MaxNodes nodes and rejects one column more.
func TestCheckSizeLimit(t *testing.T) {
	// (65535+1)×(65535+1) = 1<<32
	require.NoError(t, potential.CheckSize(1<<16-1, 1<<16-1))
	require.ErrorIs(t, potential.CheckSize(1<<16, 1<<16-1), potential.ErrInvalidDimension)
	require.NoError(t, potential.CheckSize(0, 0))
}

// TestNewTruncatesSize verifies real extents are truncated toward zero.
func TestNewTruncatesSize(t *testing.T) {
	f, err := potential.New(3.9, 2.2)
	require.NoError(t, err)
	require.Equal(t, 3, f.Width())
	require.Equal(t, 2, f.Height())

	snap := f.Snapshot()
	require.Len(t, snap, 4)    // W+1 columns
	require.Len(t, snap[0], 3) // H+1 rows
	for _, col := range snap {
		for _, v := range col {
			require.Zero(t, v)
		}
	}
	require.Equal(t, potential.Empty, f.State())
	require.Equal(t, potential.DefaultIterations, f.Iterations())
}

// TestSetFixedPointOutOfBounds checks every edge of the valid node range.
func TestSetFixedPointOutOfBounds(t *testing.T) {
	f, err := potential.New(4, 3)
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {5, 4}} {
		err = f.SetFixedPoint(p[0], p[1], 1)
		require.ErrorIs(t, err, potential.ErrOutOfBounds, "point %v", p)
	}
	require.Empty(t, f.FixedPoints())
	require.Equal(t, potential.Empty, f.State())

	// Corners are valid nodes.
	require.NoError(t, f.SetFixedPoint(0, 0, 1))
	require.NoError(t, f.SetFixedPoint(4, 3, 2))
}

// TestSetFixedPointWritesImmediately verifies the value lands in the grid
// before any solve, and that duplicates append with last-write-wins.
func TestSetFixedPointWritesImmediately(t *testing.T) {
	f, err := potential.New(4, 4)
	require.NoError(t, err)

	require.NoError(t, f.SetFixedPoint(2, 2, 1.5))
	v, err := f.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	require.NoError(t, f.SetFixedPoint(2, 2, 3))
	v, err = f.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	require.Equal(t, []potential.FixedPoint{
		{X: 2, Y: 2, Value: 1.5},
		{X: 2, Y: 2, Value: 3},
	}, f.FixedPoints())
	require.True(t, f.IsFixed(2, 2))
	require.False(t, f.IsFixed(1, 2))
	require.False(t, f.IsFixed(-1, 2))
	require.Equal(t, potential.Configured, f.State())
}

// TestFixedPointsIsCopy ensures callers cannot alias internal records.
func TestFixedPointsIsCopy(t *testing.T) {
	f, err := potential.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, f.SetFixedPoint(1, 1, 4))

	fps := f.FixedPoints()
	fps[0].Value = 99

	require.Equal(t, 4.0, f.FixedPoints()[0].Value)
}

// TestSnapshotIsCopy ensures the grid is never exposed by reference.
func TestSnapshotIsCopy(t *testing.T) {
	f, err := potential.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, f.SetFixedPoint(1, 1, 4))

	snap := f.Snapshot()
	require.Equal(t, 4.0, snap[1][1])
	snap[1][1] = -1

	v, err := f.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestAtOutOfBounds ensures At reports ErrOutOfBounds instead of panicking.
func TestAtOutOfBounds(t *testing.T) {
	f, err := potential.New(2, 2)
	require.NoError(t, err)

	_, err = f.At(3, 0)
	require.ErrorIs(t, err, potential.ErrOutOfBounds)
	_, err = f.At(0, -1)
	require.ErrorIs(t, err, potential.ErrOutOfBounds)
}

// TestStateTransitions walks Empty → Configured → Solved and checks a
// later SetFixedPoint does not leave Solved.
func TestStateTransitions(t *testing.T) {
	f, err := potential.New(4, 4, potential.WithIterations(3))
	require.NoError(t, err)
	require.Equal(t, potential.Empty, f.State())
	require.Equal(t, "empty", f.State().String())

	require.NoError(t, f.SetFixedPoint(1, 1, 1))
	require.Equal(t, potential.Configured, f.State())

	f.CalculatePotential()
	require.Equal(t, potential.Solved, f.State())
	require.Equal(t, "solved", f.State().String())

	require.NoError(t, f.SetFixedPoint(2, 2, 1))
	require.Equal(t, potential.Solved, f.State())
	v, err := f.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // grid still updated
	require.Equal(t, "configured", potential.Configured.String())
	require.Equal(t, "unknown", potential.State(42).String())
}

// TestStringOutput checks the top-row-first rendering.
func TestStringOutput(t *testing.T) {
	f, err := potential.New(1, 1, potential.WithIterations(0))
	require.NoError(t, err)
	require.NoError(t, f.SetFixedPoint(0, 0, 1))
	require.NoError(t, f.SetFixedPoint(1, 1, 2))

	require.Equal(t, "[0, 2]\n[1, 0]\n", f.String())
}
