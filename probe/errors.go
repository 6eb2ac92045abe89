package probe

import "errors"

var (
	// ErrUnknownEntry indicates Delete was given an id not in the table.
	ErrUnknownEntry = errors.New("probe: unknown entry")
	// ErrBadResolution indicates a sample grid with fewer than one column or row.
	ErrBadResolution = errors.New("probe: sample resolution must be at least 1x1")
	// ErrBadExtent indicates a negative, NaN or infinite board extent.
	ErrBadExtent = errors.New("probe: board extent must be finite and non-negative")
)
