// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"log/slog"
	"math"
)

// Field is a scalar potential sampled on the integer nodes of [0,W]×[0,H].
//
// The grid is owned exclusively by the Field: callers read single nodes,
// interpolated points, or deep copies, and mutate it only through
// SetFixedPoint and CalculatePotential.
//
// Concurrency: one writer at a time. GetPotential, At, IsFixed and the
// other read accessors are safe to call concurrently once no writer is
// active. Reading during CalculatePotential is undefined.
type Field struct {
	w, h int // W and H; the grid has (W+1)×(H+1) nodes

	cur  *grid // current solution
	next *grid // back buffer for the running sweep

	fixed  []FixedPoint // assignment-ordered records, duplicates allowed
	pinned []bool       // pinned[cur.index(x,y)] ⇔ (x,y) has a record

	state State
	opts  options
}

// New creates a Field spanning (0,0)–(W,H) where W and H are width and
// height truncated toward zero. All nodes start at 0.0 with no fixed points.
// Stage 1 (Validate): reject negative, NaN or infinite extents and grids
// of more than MaxNodes nodes.
// Stage 2 (Prepare): resolve options, allocate both sweep buffers.
// Returns ErrInvalidDimension (wrapped) on bad extents.
// Complexity: O((W+1)*(H+1)) time and memory.
func New(width, height float64, opts ...Option) (*Field, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	w, h := int(width), int(height)
	nx, ny := w+1, h+1

	return &Field{
		w:      w,
		h:      h,
		cur:    newGrid(nx, ny),
		next:   newGrid(nx, ny),
		pinned: make([]bool, nx*ny),
		state:  Empty,
		opts:   gatherOptions(opts...),
	}, nil
}

// CheckSize reports whether New accepts width and height: both finite and
// non-negative, and (W+1)×(H+1) no larger than MaxNodes. The node count is
// computed in float64 so extents beyond the int range cannot wrap around.
// Returns ErrInvalidDimension (wrapped) otherwise.
func CheckSize(width, height float64) error {
	if !validExtent(width) || !validExtent(height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidDimension, width, height)
	}
	if nodes := (math.Trunc(width) + 1) * (math.Trunc(height) + 1); nodes > MaxNodes {
		return fmt.Errorf("%w: %gx%g needs %g nodes, limit %.0f",
			ErrInvalidDimension, width, height, nodes, float64(MaxNodes))
	}

	return nil
}

func validExtent(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Width returns W, the largest valid x node index.
func (f *Field) Width() int { return f.w }

// Height returns H, the largest valid y node index.
func (f *Field) Height() int { return f.h }

// Iterations returns the number of sweeps CalculatePotential runs.
func (f *Field) Iterations() int { return f.opts.iterations }

// State reports the lifecycle stage.
func (f *Field) State() State { return f.state }

// SetFixedPoint pins node (x,y) to value.
// The value is written into the grid immediately and a record is appended,
// so repeated calls on the same node are allowed and the last one wins.
// Pinned nodes are skipped by the interior update; see CalculatePotential
// for how the border rows and columns treat them.
// Returns ErrOutOfBounds (wrapped) when (x,y) is outside [0,W]×[0,H].
// Complexity: O(1) amortized.
func (f *Field) SetFixedPoint(x, y int, value float64) error {
	if !f.cur.inBounds(x, y) {
		return fieldErrorf("SetFixedPoint", x, y, ErrOutOfBounds)
	}
	f.cur.set(x, y, value)
	f.fixed = append(f.fixed, FixedPoint{X: x, Y: y, Value: value})
	f.pinned[f.cur.index(x, y)] = true
	if f.state == Empty {
		f.state = Configured
	}

	return nil
}

// IsFixed reports whether any fixed-point record targets (x,y).
// Out-of-range coordinates are never fixed.
// Complexity: O(1).
func (f *Field) IsFixed(x, y int) bool {
	if !f.cur.inBounds(x, y) {
		return false
	}

	return f.pinned[f.cur.index(x, y)]
}

// FixedPoints returns a copy of the fixed-point records in assignment order.
// Complexity: O(k) for k records.
func (f *Field) FixedPoints() []FixedPoint {
	out := make([]FixedPoint, len(f.fixed))
	copy(out, f.fixed)

	return out
}

// At returns the potential stored at node (x,y).
// Returns ErrOutOfBounds (wrapped) when (x,y) is outside [0,W]×[0,H].
// Complexity: O(1).
func (f *Field) At(x, y int) (float64, error) {
	if !f.cur.inBounds(x, y) {
		return 0, fieldErrorf("At", x, y, ErrOutOfBounds)
	}

	return f.cur.at(x, y), nil
}

// Snapshot returns a deep copy of the grid indexed as [x][y].
// Complexity: O((W+1)*(H+1)) time and memory.
func (f *Field) Snapshot() [][]float64 {
	out := make([][]float64, f.cur.nx)
	for x := range out {
		out[x] = f.cur.column(x)
	}

	return out
}

// String renders the grid, top row (y=H) first.
func (f *Field) String() string {
	return f.cur.String()
}

func (f *Field) logger() *slog.Logger {
	if f.opts.logger != nil {
		return f.opts.logger
	}

	return Logger()
}
