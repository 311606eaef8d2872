package rawmem

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/rawvec/internal/conv"
	"github.com/hupe1980/rawvec/internal/mmap"
)

// MemoryAcquirer reserves bytes from an external budget before a block
// is allocated and receives them back when the block is released.
// *resource.Controller satisfies this interface.
type MemoryAcquirer interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Block owns a contiguous region of memory sized for a fixed number of
// element slots. It never runs element constructors or destructors;
// the slots are reserved bytes, and which of them hold live values is
// the caller's concern.
//
// A Block must not be copied after first use; ownership moves via
// Transfer or Swap.
type Block[T any] struct {
	slots    []T
	mapping  *mmap.Mapping // non-nil for off-heap blocks
	budget   MemoryAcquirer
	reserved int64
}

// New reserves storage for exactly capacity elements of T without
// constructing any. A capacity of zero allocates nothing and is always
// valid. On failure no partial state is created: the block either
// exists fully or stays empty.
func New[T any](capacity int, opts ...Option) (Block[T], error) {
	if capacity < 0 {
		panic(fmt.Sprintf("rawmem: negative capacity %d", capacity))
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	byteSize, err := conv.MulInt(capacity, int(unsafe.Sizeof(zero)))
	if err != nil {
		return Block[T]{}, &AllocError{Capacity: capacity, cause: err}
	}

	if cfg.offHeap && typeHasPointers[T]() {
		return Block[T]{}, ErrOffHeapPointers
	}

	if cfg.budget != nil {
		if err := cfg.budget.AcquireMemory(int64(byteSize)); err != nil {
			return Block[T]{}, &AllocError{Capacity: capacity, cause: err}
		}
	}

	b := Block[T]{budget: cfg.budget, reserved: int64(byteSize)}

	// Zero-sized element types reserve no bytes; a heap slice keeps the
	// slot addressing uniform.
	if cfg.offHeap && byteSize > 0 {
		m, err := mmap.MapAnon(byteSize)
		if err != nil {
			if cfg.budget != nil {
				cfg.budget.ReleaseMemory(int64(byteSize))
			}
			return Block[T]{}, &AllocError{Capacity: capacity, cause: err}
		}
		b.mapping = m
		b.slots = unsafe.Slice((*T)(unsafe.Pointer(&m.Bytes()[0])), capacity)
		return b, nil
	}

	b.slots = make([]T, capacity)
	return b, nil
}

// Cap returns the number of element slots the block can hold.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// ByteSize returns the number of bytes reserved for the block.
func (b *Block[T]) ByteSize() int {
	return int(b.reserved)
}

// At returns a pointer into slot i. The slot may or may not hold a
// live value; the block does not know. Panics if i >= Cap().
func (b *Block[T]) At(i int) *T {
	return &b.slots[i]
}

// Slice returns the slot range [lo, hi). hi may equal the capacity,
// mirroring the one-past-the-end pointer idiom.
func (b *Block[T]) Slice(lo, hi int) []T {
	return b.slots[lo:hi]
}

// Transfer moves the region and capacity to a new owner in constant
// time. The receiver becomes empty (capacity 0, no region).
func (b *Block[T]) Transfer() Block[T] {
	out := *b
	*b = Block[T]{}
	return out
}

// Swap exchanges the regions and capacities of two blocks in constant
// time without allocating.
func (b *Block[T]) Swap(other *Block[T]) {
	*b, *other = *other, *b
}

// Release frees the region without touching its contents; any live
// elements must have been destroyed by the caller beforehand. Release
// is idempotent and a no-op for an empty block. The block is empty and
// reusable afterwards.
func (b *Block[T]) Release() error {
	var err error
	if b.mapping != nil {
		err = b.mapping.Close()
	}
	if b.budget != nil && b.reserved > 0 {
		b.budget.ReleaseMemory(b.reserved)
	}
	*b = Block[T]{}
	return err
}
