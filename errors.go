package strand

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped) by the fallible API surface.
// Match with errors.Is.
var (
	// ErrInvalidUTF8 reports bytes or UTF-16 code units that do not encode
	// valid text.
	ErrInvalidUTF8 = errors.New("strand: invalid UTF-8")

	// ErrNotBoundary reports an offset that falls inside a multi-byte
	// UTF-8 sequence.
	ErrNotBoundary = errors.New("strand: offset not on a UTF-8 character boundary")

	// ErrOutOfBounds reports an offset or range outside the logical content.
	ErrOutOfBounds = errors.New("strand: offset out of bounds")
)

// SliceError describes why a requested slice of a string was rejected.
// It wraps one of the sentinel errors above.
type SliceError struct {
	Start int // requested start offset
	End   int // requested end offset
	Len   int // logical length of the string at the time of the request
	What  string
	err   error
}

// Error implements the error interface.
func (e *SliceError) Error() string {
	return fmt.Sprintf("%s: %s (range [%d:%d) of %d bytes)", e.err.Error(), e.What, e.Start, e.End, e.Len)
}

// Unwrap returns the sentinel error category.
func (e *SliceError) Unwrap() error {
	return e.err
}

func sliceErr(err error, what string, start, end, length int) error {
	return &SliceError{Start: start, End: end, Len: length, What: what, err: err}
}
