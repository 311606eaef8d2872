package rawmem

import (
	"errors"
	"fmt"
)

// ErrOffHeapPointers is returned when an off-heap block is requested
// for an element type that contains pointers.
var ErrOffHeapPointers = errors.New("rawmem: off-heap blocks require a pointer-free element type")

// AllocError indicates that reserving storage for a block failed.
//
// The underlying cause (budget exhaustion, size overflow, a mapping
// error) can be accessed via errors.Unwrap.
type AllocError struct {
	Capacity int
	cause    error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("rawmem: allocating block of capacity %d: %v", e.Capacity, e.cause)
}

func (e *AllocError) Unwrap() error { return e.cause }
