// SPDX-License-Identifier: MIT
// Package potential: sentinel error set.
// Every message is prefixed with "potential: ..." so log lines are easy to
// grep. Public methods return these sentinels wrapped with call context;
// callers match them via errors.Is.

package potential

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by New and CheckSize when width or
	// height is negative, NaN or infinite, or the grid exceeds MaxNodes.
	ErrInvalidDimension = errors.New("potential: width and height must be finite and non-negative")

	// ErrOutOfBounds indicates a node coordinate outside [0,W]×[0,H].
	// SetFixedPoint and At return it instead of indexing past the grid.
	ErrOutOfBounds = errors.New("potential: grid coordinate out of range")
)

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, x, y, err)
}
