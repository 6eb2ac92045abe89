// Package potential computes the electrostatic potential over a rectangular
// 2D region with fixed-value electrodes.
//
// What:
//
//   - Field holds a (W+1)×(H+1) grid of node potentials over [0,W]×[0,H].
//   - SetFixedPoint pins a node (a Dirichlet condition, i.e. an electrode).
//   - CalculatePotential relaxes Laplace's equation with plain Jacobi
//     sweeps, a fixed number of times (DefaultIterations = 2000).
//   - GetPotential interpolates bilinearly at any continuous point.
//
// Boundary model:
//
//   - Border nodes copy their inner neighbour after every sweep.
//   - Only the x=0 column keeps fixed nodes; the x=W column and the y=0 and
//     y=H rows are overwritten even when pinned.
//
// Complexity:
//
//   - New:                O(W·H) time and memory.
//   - SetFixedPoint:      O(1).
//   - CalculatePotential: O(Iterations·W·H), two preallocated buffers.
//   - GetPotential:       O(1).
//
// Options:
//
//   - WithIterations(n): sweeps per CalculatePotential call.
//   - WithWorkers(n):    split each sweep across n goroutines (same result).
//   - WithLogger(l):     per-field slog logger.
//
// Errors:
//
//   - ErrInvalidDimension: negative, NaN or infinite width/height, or more
//     than MaxNodes nodes.
//   - ErrOutOfBounds:      node coordinate outside [0,W]×[0,H].
package potential
