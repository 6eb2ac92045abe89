// SPDX-License-Identifier: MIT

package potential

import "time"

// CalculatePotential runs Iterations() Jacobi sweeps over the grid.
//
// One sweep:
//  1. The back buffer is overwritten with the current grid.
//  2. Every interior node (1 ≤ x ≤ W-1, 1 ≤ y ≤ H-1) that is not fixed
//     becomes the mean of its four neighbours in the current grid.
//  3. Border nodes are copied from their inner neighbour in the back buffer:
//     the x=0 column keeps fixed nodes, the x=W column, the y=0 row and the
//     y=H row are copied unconditionally. Columns are handled before rows,
//     so corners end up with the row copy.
//  4. The buffers are swapped.
//
// There is no convergence test: the sweep count alone bounds the cost and
// the result is reproducible bit for bit. Calling it again continues from
// the current grid.
//
// Complexity: O(Iterations·(W+1)·(H+1)) time, no allocation per sweep
// beyond worker goroutines when WithWorkers(n>1) is set.
func (f *Field) CalculatePotential() {
	log := f.logger()
	start := time.Now()
	log.Debug("potential: relaxation started",
		"width", f.w, "height", f.h,
		"fixed", len(f.fixed),
		"iterations", f.opts.iterations,
		"workers", f.opts.workers)

	for it := 0; it < f.opts.iterations; it++ {
		f.sweep()
	}
	f.state = Solved

	log.Debug("potential: relaxation finished",
		"iterations", f.opts.iterations,
		"elapsed", time.Since(start))
}

// sweep performs one Jacobi iteration and swaps the buffers.
func (f *Field) sweep() {
	f.next.copyFrom(f.cur)
	f.relaxInterior()
	f.applyBoundaries(f.next)
	f.cur, f.next = f.next, f.cur
}

// relaxInterior updates interior columns 1..W-1 of the back buffer.
// Each column reads only f.cur and writes only its own cells of f.next,
// so column ranges can run on separate goroutines.
func (f *Field) relaxInterior() {
	if f.w < 2 || f.h < 2 {
		return // no interior nodes
	}
	if f.opts.workers <= 1 {
		f.relaxColumns(1, f.w)
		return
	}
	parallelRange(1, f.w, f.opts.workers, f.relaxColumns)
}

// relaxColumns applies the four-neighbour mean to columns [x0,x1).
func (f *Field) relaxColumns(x0, x1 int) {
	src, dst := f.cur.data, f.next.data
	ny := f.cur.ny
	for x := x0; x < x1; x++ {
		base := x * ny
		for y := 1; y < f.h; y++ {
			i := base + y
			if f.pinned[i] {
				continue
			}
			dst[i] = (src[i+ny] + src[i-ny] + src[i+1] + src[i-1]) / 4
		}
	}
}

// applyBoundaries copies border nodes from their inner neighbour within g.
// Only the x=0 column honours fixed points. A pass that would need a
// neighbour beyond the grid (W < 1 or H < 1) is skipped.
func (f *Field) applyBoundaries(g *grid) {
	w, h := f.w, f.h
	if w >= 1 {
		for y := 0; y <= h; y++ {
			if !f.pinned[g.index(0, y)] {
				g.set(0, y, g.at(1, y))
			}
			g.set(w, y, g.at(w-1, y))
		}
	}
	if h >= 1 {
		for x := 0; x <= w; x++ {
			g.set(x, 0, g.at(x, 1))
			g.set(x, h, g.at(x, h-1))
		}
	}
}
