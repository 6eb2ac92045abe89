// Package probe reads a solved potential field the way a front-end does.
//
//   - Table keeps measurement rows (x, y, V) with stable ids, supports
//     delete, clear and re-measuring after a new solve.
//   - Sample evaluates the field on a dense lattice, the access pattern of a
//     heatmap renderer; Normalize maps samples into [0,1].
//
// Nothing here mutates the field: every read goes through the Querier
// interface.
package probe
