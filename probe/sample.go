// SPDX-License-Identifier: MIT

package probe

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Grid is a dense cols×rows sample of a field, row-major, row 0 at y=0.
type Grid struct {
	cols, rows int
	values     []float64
}

// Sample queries q on a cols×rows lattice covering a board of extent w×h.
// Sample (c,r) is taken at field point (c·w/cols, r·h/rows), so the far
// edge x=w, y=h is never sampled.
// Stage 1 (Validate): cols, rows ≥ 1; w, h finite and ≥ 0.
// Stage 2 (Execute): one query per sample.
// Returns ErrBadResolution or ErrBadExtent.
// Complexity: O(cols·rows) queries and memory.
func Sample(q Querier, w, h float64, cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadResolution, cols, rows)
	}
	if !finiteNonNeg(w) || !finiteNonNeg(h) {
		return nil, fmt.Errorf("%w: %gx%g", ErrBadExtent, w, h)
	}
	sx, sy := w/float64(cols), h/float64(rows)

	g := &Grid{cols: cols, rows: rows, values: make([]float64, cols*rows)}
	for r := 0; r < rows; r++ {
		fy := float64(r) * sy
		for c := 0; c < cols; c++ {
			g.values[r*cols+c] = q.GetPotential(float64(c)*sx, fy)
		}
	}

	return g, nil
}

func finiteNonNeg(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Cols returns the number of samples per row.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// At returns sample (c,r). Panics if out of range, like a slice index.
func (g *Grid) At(c, r int) float64 {
	if c < 0 || c >= g.cols || r < 0 || r >= g.rows {
		panic(fmt.Sprintf("probe: Grid.At(%d,%d) out of range %dx%d", c, r, g.cols, g.rows))
	}

	return g.values[r*g.cols+c]
}

// Range returns the smallest and largest sample.
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// Normalize returns a new grid where every sample v is mapped to
// InverseLerp(lo, hi, v).
// Complexity: O(cols·rows).
func (g *Grid) Normalize(lo, hi float64) *Grid {
	out := &Grid{cols: g.cols, rows: g.rows, values: make([]float64, len(g.values))}
	for i, v := range g.values {
		out.values[i] = InverseLerp(lo, hi, v)
	}

	return out
}

// InverseLerp returns where v sits between lo and hi, clamped to [0,1].
// A zero-width range yields 0.
func InverseLerp(lo, hi, v float64) float64 {
	if lo == hi {
		return 0
	}
	t := (v - lo) / (hi - lo)

	return math.Max(0, math.Min(1, t))
}

// WriteCSV writes one CSV record per row, y=0 first, values in full
// precision.
func (g *Grid) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	rec := make([]string, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			rec[c] = strconv.FormatFloat(g.values[r*g.cols+c], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("probe: write row %d: %w", r, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
