package rawvec

import (
	"fmt"

	"github.com/hupe1980/rawvec/internal/conv"
	"github.com/hupe1980/rawvec/rawmem"
)

// Vector is a resizable, contiguous, generic array with manually
// managed element lifetimes. It owns exactly one storage block at a
// time; elements at indices [0, Len) are live, slots beyond the
// length are reserved storage and never observable.
//
// The zero value is an empty, usable vector with plain value
// semantics. Use New to install options.
//
// A Vector is not safe for concurrent use.
type Vector[T any] struct {
	data  rawmem.Block[T]
	size  int
	cfg   config[T]
	stats Stats
}

// Stats tracks storage activity. Counters are plain integers: the
// vector is single-threaded by contract.
type Stats struct {
	Grows         uint64 // block replacements (growth and Reserve)
	MovedElems    uint64 // elements relocated by move
	CopiedElems   uint64 // elements relocated by copy
	BytesReserved uint64 // bytes currently held by the storage block
}

// New creates an empty vector. No storage is allocated until the
// first element arrives.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(&v.cfg)
	}
	return v
}

// NewWithLen creates a vector of n value-constructed elements with
// capacity n. If construction of element k fails, the k elements
// already constructed are destroyed and the block is released before
// the error is returned - nothing leaks.
func NewWithLen[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		_ = v.Close()
		return nil, err
	}
	return v, nil
}

// FromSlice creates a vector holding the elements of s, taking
// ownership of them by plain assignment (no copy hooks run). The
// input slice itself is not retained.
func FromSlice[T any](s []T, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if len(s) == 0 {
		return v, nil
	}
	if err := v.Reserve(len(s)); err != nil {
		return nil, err
	}
	copy(v.data.Slice(0, len(s)), s)
	v.size = len(s)
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots currently reserved.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns a pointer to element i. The pointer stays valid only
// until the next capacity-changing operation or Erase. Panics if i is
// out of range.
func (v *Vector[T]) At(i int) *T {
	v.checkIndex(i)
	return v.data.At(i)
}

// Get returns a shallow copy of element i. Panics if i is out of range.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set assigns value to element i, overwriting the previous value by
// plain assignment; the destructor hook does not run. Panics if i is
// out of range.
func (v *Vector[T]) Set(i int, value T) {
	*v.At(i) = value
}

// Slice returns the live elements [0, Len) backed by the vector's
// storage. It is invalidated by any capacity-changing operation and
// by Erase.
func (v *Vector[T]) Slice() []T {
	if v.size == 0 {
		return nil
	}
	return v.data.Slice(0, v.size)
}

// Swap exchanges the contents and configuration of two vectors in
// constant time. It never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.cfg, other.cfg = other.cfg, v.cfg
	v.stats, other.stats = other.stats, v.stats
}

// Close destroys all live elements and releases the storage block. It
// is idempotent; the vector is empty and reusable afterwards.
func (v *Vector[T]) Close() error {
	v.destroyRange(0, v.size)
	v.size = 0
	return v.data.Release()
}

// Stats returns a snapshot of the vector's storage counters.
func (v *Vector[T]) Stats() Stats {
	s := v.stats
	s.BytesReserved, _ = conv.IntToUint64(v.data.ByteSize())
	return s
}

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("rawvec: index %d out of range [0, %d)", i, v.size))
	}
}

func (v *Vector[T]) checkPosition(i int) {
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("rawvec: position %d out of range [0, %d]", i, v.size))
	}
}

// destroyRange destroys the live elements [lo, hi) in the vector's
// own block.
func (v *Vector[T]) destroyRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		v.cfg.destroyElem(v.data.At(i))
	}
}

// destroyIn destroys constructed elements [lo, hi) in an arbitrary
// block. Used to unwind partially filled replacement blocks.
func (v *Vector[T]) destroyIn(b *rawmem.Block[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		v.cfg.destroyElem(b.At(i))
	}
}
