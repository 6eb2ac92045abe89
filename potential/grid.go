// SPDX-License-Identifier: MIT

package potential

import (
	"fmt"
	"strings"
)

// grid is a dense node buffer of nx×ny float64 values.
// Storage is column-major: node (x,y) lives at data[x*ny+y], so the four
// Jacobi neighbours of an index i are i±1 (y) and i±ny (x).
type grid struct {
	nx, ny int       // node counts along x and y (W+1, H+1)
	data   []float64 // flat backing storage, length == nx*ny
}

// newGrid allocates an nx×ny grid initialized to zeros.
// Callers guarantee nx, ny ≥ 1 (New validates dimensions first).
// Complexity: O(nx*ny) time and memory.
func newGrid(nx, ny int) *grid {
	return &grid{nx: nx, ny: ny, data: make([]float64, nx*ny)}
}

// inBounds reports whether (x,y) addresses a node.
// Complexity: O(1).
func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

// index maps (x,y) to the flat offset. No bounds check.
// Complexity: O(1).
func (g *grid) index(x, y int) int {
	return x*g.ny + y
}

func (g *grid) at(x, y int) float64 {
	return g.data[x*g.ny+y]
}

func (g *grid) set(x, y int, v float64) {
	g.data[x*g.ny+y] = v
}

// copyFrom overwrites g with the contents of src (same shape).
// Complexity: O(nx*ny), no allocation.
func (g *grid) copyFrom(src *grid) {
	copy(g.data, src.data)
}

// column returns a fresh copy of column x (all y).
func (g *grid) column(x int) []float64 {
	out := make([]float64, g.ny)
	copy(out, g.data[x*g.ny:(x+1)*g.ny])

	return out
}

// String renders rows from y=ny-1 down to y=0 so the printout matches the
// usual "y up" orientation of the field.
// Complexity: O(nx*ny).
func (g *grid) String() string {
	var sb strings.Builder
	for y := g.ny - 1; y >= 0; y-- {
		sb.WriteByte('[')
		for x := 0; x < g.nx; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.at(x, y))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
