// SPDX-License-Identifier: MIT

package potential

// FixedPoint pins one grid node to a constant potential.
// Records are kept in assignment order; the same (X, Y) may appear more
// than once and the latest record carries the value stored in the grid.
type FixedPoint struct {
	X, Y  int     // node coordinates, 0 ≤ X ≤ W, 0 ≤ Y ≤ H
	Value float64 // pinned potential
}

// State is the logical lifecycle stage of a Field.
// Transitions only move forward: Empty → Configured → Solved. Once Solved,
// further SetFixedPoint calls change the grid but not the state.
type State int

const (
	// Empty: freshly constructed, all zero, no fixed points.
	Empty State = iota
	// Configured: at least one fixed point set, not yet solved.
	Configured
	// Solved: CalculatePotential has run at least once.
	Solved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Configured:
		return "configured"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}
