package rawvec

import (
	"github.com/hupe1980/rawvec/rawmem"
)

// config bundles the element lifetime hooks and ambient collaborators
// of a vector. The zero value gives plain Go value semantics:
// value construction yields the zero value, copies are assignments,
// moves take the value and zero the source, and none of them can fail.
type config[T any] struct {
	construct   func() (T, error)
	copyFn      func(T) (T, error)
	moveFn      func(*T) (T, error)
	moveNothrow bool
	destroyFn   func(*T)
	noCopy      bool

	logger    *Logger
	metrics   MetricsCollector
	blockOpts []rawmem.Option
}

// Option configures a Vector at construction time.
type Option[T any] func(*config[T])

// WithConstructor sets the value-construction hook used by Resize,
// NewWithLen and PushBackWith-style growth of the live range. The
// default constructor returns the zero value and cannot fail.
func WithConstructor[T any](fn func() (T, error)) Option[T] {
	return func(c *config[T]) {
		c.construct = fn
	}
}

// WithCopier sets a fallible deep-copy hook. It is used by Clone,
// CloneFrom and by relocation when the policy selects copying.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(c *config[T]) {
		c.copyFn = fn
	}
}

// WithMover sets a move hook that may fail. Installing a fallible
// mover makes relocation prefer copying (when the type is copyable),
// so a failed move never invalidates the original elements.
//
// The hook must leave *src in a valid, destructible state even on
// failure.
func WithMover[T any](fn func(*T) (T, error)) Option[T] {
	return func(c *config[T]) {
		c.moveFn = fn
		c.moveNothrow = false
	}
}

// WithNothrowMover sets a move hook that cannot fail. Relocation will
// always move.
func WithNothrowMover[T any](fn func(*T) T) Option[T] {
	return func(c *config[T]) {
		c.moveFn = func(src *T) (T, error) {
			return fn(src), nil
		}
		c.moveNothrow = true
	}
}

// WithDestructor sets a hook that runs whenever a live element is
// destroyed (PopBack, Erase, shrinking Resize, Close, and the
// destruction of originals after relocation). The slot is zeroed after
// the hook returns.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(c *config[T]) {
		c.destroyFn = fn
	}
}

// WithNoCopy marks the element type as non-copyable. Clone and
// CloneFrom fail with ErrNotCopyable, and relocation is forced to
// move even when the mover may fail (there is no alternative).
func WithNoCopy[T any]() Option[T] {
	return func(c *config[T]) {
		c.noCopy = true
	}
}

// WithLogger configures structured logging. Growth and relocation are
// logged at debug level. The default is no logging.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}

// WithMetrics configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetrics[T any](collector MetricsCollector) Option[T] {
	return func(c *config[T]) {
		c.metrics = collector
	}
}

// WithOffHeap allocates every storage block outside the Go heap via
// anonymous memory mappings. Requires a pointer-free element type;
// see rawmem.WithOffHeap.
func WithOffHeap[T any]() Option[T] {
	return func(c *config[T]) {
		c.blockOpts = append(c.blockOpts, rawmem.WithOffHeap())
	}
}

// WithBudget charges every storage block against the given byte
// budget, for example a resource.Controller. Budget exhaustion
// surfaces as an allocation failure.
func WithBudget[T any](budget rawmem.MemoryAcquirer) Option[T] {
	return func(c *config[T]) {
		c.blockOpts = append(c.blockOpts, rawmem.WithBudget(budget))
	}
}
