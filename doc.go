// Package rawvec provides a generic dynamic array with manual storage
// management.
//
// A Vector[T] owns a single raw storage block (see package rawmem) and
// a length. Elements in [0, Len) are live; slots beyond the length are
// reserved storage that never escapes through the API. Growth always
// allocates a fresh block, relocates the live elements into it, and
// swaps it in - storage is never resized in place.
//
// # Quick Start
//
//	v := rawvec.New[int]()
//	defer v.Close()
//
//	for i := 1; i <= 4; i++ {
//	    v.PushBack(i * 10)
//	}
//	v.Insert(0, 5)
//	v.Erase(2)
//
//	for _, x := range v.Slice() {
//	    fmt.Println(x)
//	}
//
// # Element Lifetime Hooks
//
// Types that own external resources can install lifetime hooks at
// construction time:
//
//	v := rawvec.New[*Conn](
//	    rawvec.WithCopier(cloneConn),       // fallible deep copy
//	    rawvec.WithMover(stealConn),        // fallible move
//	    rawvec.WithDestructor(closeConn),   // runs on every destroy
//	)
//
// The hooks drive the relocation rule: when a block is replaced,
// elements are moved when moving cannot fail (or the type is not
// copyable at all) and copied otherwise, so a failed move never leaves
// the vector without a usable element set.
//
// # Failure Guarantees
//
// Every operation that builds into a fresh block (Reserve, growing
// PushBack/Insert, Clone) gives the strong guarantee: on failure the
// original vector is untouched and the new block is fully unwound.
// In-place operations without reallocation (interior Insert at spare
// capacity, CloneFrom reuse) give the basic guarantee: the vector
// stays valid and destructible, but element values may be partially
// updated. PopBack, Swap, Detach and TakeFrom never fail.
//
// # Storage Backends
//
// WithOffHeap places the block in an anonymous memory mapping outside
// the Go heap (pointer-free element types only); WithBudget charges
// every block against a byte budget such as resource.Controller,
// turning exhaustion into an ordinary allocation error.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. It assumes a
// single-threaded, single-owner usage model; callers needing
// concurrent access must synchronize externally.
package rawvec
