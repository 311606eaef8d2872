// Package rawmem provides raw, capacity-sized element storage.
//
// # Overview
//
// A Block[T] owns a single contiguous region of memory sized for a
// fixed number of element slots. The block never constructs or
// destroys elements; it is purely reserved storage, and the caller is
// responsible for tracking which slots hold live values.
//
// # Backends
//
// By default slots live on the Go heap. WithOffHeap places them in an
// anonymous memory mapping outside the garbage collector; this
// requires a pointer-free element type, since the collector cannot see
// references stored in unmanaged memory.
//
// # Budgets
//
// WithBudget reserves the block's byte size from a MemoryAcquirer
// before allocating and returns it on Release, turning budget
// exhaustion into an ordinary allocation failure.
//
// # Ownership
//
// A Block must not be copied after first use. Ownership changes go
// through Transfer (move) or Swap; both are constant time and never
// allocate.
package rawmem
