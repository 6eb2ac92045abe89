package electrode

import "errors"

var (
	// ErrUnknownKind indicates an electrode kind other than point, row or column.
	ErrUnknownKind = errors.New("electrode: unknown kind")
	// ErrOutOfGrid indicates an electrode coordinate outside [0,W]×[0,H].
	ErrOutOfGrid = errors.New("electrode: position outside the grid")
)
