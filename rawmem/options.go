package rawmem

type config struct {
	offHeap bool
	budget  MemoryAcquirer
}

// Option configures block allocation.
type Option func(*config)

// WithOffHeap allocates the block outside the Go heap via an anonymous
// memory mapping. The element type must not contain pointers: off-heap
// memory is invisible to the garbage collector, and references stored
// there would be collected while still in use. New returns
// ErrOffHeapPointers for pointer-bearing types.
func WithOffHeap() Option {
	return func(c *config) {
		c.offHeap = true
	}
}

// WithBudget reserves the block's byte size from the given budget
// before allocating and returns it on Release. A failed acquisition
// surfaces as an AllocError wrapping the budget's error.
func WithBudget(budget MemoryAcquirer) Option {
	return func(c *config) {
		c.budget = budget
	}
}
