package rawvec

import (
	"errors"
	"fmt"
)

// ErrNotCopyable is returned when a copy is requested from a vector
// whose element type was marked non-copyable via WithNoCopy.
var ErrNotCopyable = errors.New("rawvec: element type is not copyable")

// ElementError wraps a failure reported by an element lifetime hook
// (constructor, copier or mover).
//
// Index is the position of the element whose hook failed, relative to
// the range the operation was working on. The hook's original error
// can be accessed via errors.Unwrap.
type ElementError struct {
	Op    string // "construct", "copy" or "move"
	Index int
	cause error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("rawvec: %s element %d: %v", e.Op, e.Index, e.cause)
}

func (e *ElementError) Unwrap() error { return e.cause }

func elementError(op string, index int, cause error) error {
	return &ElementError{Op: op, Index: index, cause: cause}
}
