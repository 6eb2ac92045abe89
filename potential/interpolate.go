// SPDX-License-Identifier: MIT

package potential

import "math"

// GetPotential returns the potential at the continuous point (x,y) by
// bilinear interpolation over the cell whose lower-left node is
// (floor(x), floor(y)).
//
// Points whose cell would reach past the grid, that is floor(x) outside
// [0,W-1] or floor(y) outside [0,H-1], yield exactly 0.0. So do NaN inputs.
// At integer coordinates inside the domain the result equals the stored
// node value exactly.
//
// Pure read; no allocation.
// Complexity: O(1).
func (f *Field) GetPotential(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	// Compare as floats first so huge inputs never overflow int conversion.
	if !(fx >= 0 && fx < float64(f.w) && fy >= 0 && fy < float64(f.h)) {
		return 0
	}
	i, j := int(fx), int(fy)
	dx, dy := x-fx, y-fy
	g := f.cur

	return bilinear(
		g.at(i, j),
		g.at(i+1, j),
		g.at(i, j+1),
		g.at(i+1, j+1),
		dx, dy,
	)
}

// bilinear blends the four corners of a unit cell with weights from
// (dx,dy) ∈ [0,1)².
func bilinear(v00, v10, v01, v11, dx, dy float64) float64 {
	return v00*(1-dx)*(1-dy) +
		v10*dx*(1-dy) +
		v01*(1-dx)*dy +
		v11*dx*dy
}
