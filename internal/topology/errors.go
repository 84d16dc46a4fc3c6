package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates an index outside of the currently valid range.
	ErrOutOfBounds = errors.New("topology: index out of bounds")

	// ErrInvalid indicates a structurally invalid request: a self bond, a
	// degenerate angle or dihedral, an overlapping residue, or a resize that
	// would orphan a bond.
	ErrInvalid = errors.New("topology: invalid operation")
)

// IndexError wraps ErrOutOfBounds with the offending index.
type IndexError struct {
	What  string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("topology: %s index %d out of bounds (size %d)", e.What, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

func outOfBounds(what string, index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{What: what, Index: index, Size: size}
	}
	return nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
