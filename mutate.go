package rawvec

import (
	"time"

	"github.com/hupe1980/rawvec/rawmem"
)

// Reserve ensures capacity for at least n elements. When n does not
// exceed the current capacity it is a no-op. Otherwise a fresh block
// of exactly n slots is allocated, the live elements are relocated
// into it per the relocation rule, the originals are destroyed and
// the block is swapped in.
//
// On failure the vector is untouched when relocation copies (strong
// guarantee); a failing fallible move leaves already-moved sources in
// their moved-from state (basic guarantee).
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Cap() {
		return nil
	}
	nb, err := rawmem.New[T](n, v.cfg.blockOpts...)
	if err != nil {
		return err
	}
	return v.swapIn(&nb)
}

// Resize sets the length to n. Growing value-constructs the new tail
// elements, reserving more capacity first if needed; a failing
// constructor unwinds the partial tail and leaves the length
// unchanged. Shrinking destroys exactly the trailing Len-n elements.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("rawvec: negative length")
	}
	switch {
	case n == v.size:
		return nil
	case n > v.size:
		if n > v.data.Cap() {
			if err := v.Reserve(n); err != nil {
				return err
			}
		}
		for i := v.size; i < n; i++ {
			val, err := v.cfg.newElem()
			if err != nil {
				v.destroyRange(v.size, i)
				return elementError("construct", i, err)
			}
			*v.data.At(i) = val
		}
		v.size = n
	default:
		v.destroyRange(n, v.size)
		v.size = n
	}
	return nil
}

// PushBack appends value and returns a pointer to the stored element.
// The pointer stays valid until the next capacity-changing operation.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	return v.PushBackWith(func() (T, error) { return value, nil })
}

// PushBackWith appends an element produced by ctor. When growth is
// needed, the element is constructed into the new block before any
// existing element is touched, so a failing ctor leaves the vector
// unmodified.
func (v *Vector[T]) PushBackWith(ctor func() (T, error)) (*T, error) {
	var start time.Time
	if v.cfg.metrics != nil {
		start = time.Now()
	}

	p, err := v.pushBack(ctor)

	if m := v.cfg.metrics; m != nil {
		m.RecordPushBack(time.Since(start), err)
	}
	return p, err
}

func (v *Vector[T]) pushBack(ctor func() (T, error)) (*T, error) {
	if v.size == v.data.Cap() {
		return v.insertGrow(v.size, ctor)
	}

	val, err := ctor()
	if err != nil {
		return nil, elementError("construct", v.size, err)
	}
	*v.data.At(v.size) = val
	v.size++
	return v.data.At(v.size - 1), nil
}

// PopBack destroys the last live element. It is a no-op on an empty
// vector and never fails. Capacity is unchanged.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.cfg.destroyElem(v.data.At(v.size - 1))
	v.size--
}

// Insert places value at position i, shifting the elements at [i, Len)
// one slot toward the back. i may equal Len, which appends. Returns a
// pointer to the inserted element. Panics if i is outside [0, Len].
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	return v.InsertWith(i, func() (T, error) { return value, nil })
}

// InsertWith inserts an element produced by ctor at position i.
//
// When growth is needed, the new element is constructed directly into
// its final slot in the fresh block before the existing elements are
// relocated around it (strong guarantee, subject to the relocation
// rule). Without growth, an interior insert builds the value on the
// side, extends the last element into the next slot and shifts the
// tail backward by move; a failure during that shift leaves the
// vector valid but partially shifted (basic guarantee).
func (v *Vector[T]) InsertWith(i int, ctor func() (T, error)) (*T, error) {
	v.checkPosition(i)

	var start time.Time
	if v.cfg.metrics != nil {
		start = time.Now()
	}

	p, err := v.insert(i, ctor)

	if m := v.cfg.metrics; m != nil {
		m.RecordInsert(time.Since(start), err)
	}
	return p, err
}

func (v *Vector[T]) insert(i int, ctor func() (T, error)) (*T, error) {
	if v.size == v.data.Cap() {
		return v.insertGrow(i, ctor)
	}

	if i == v.size {
		return v.pushBack(ctor)
	}

	// Interior insert at spare capacity: build the new value on the
	// side so a failing ctor leaves the vector untouched.
	val, err := ctor()
	if err != nil {
		return nil, elementError("construct", i, err)
	}

	// Extend the live range: the current last element moves into the
	// first unused slot.
	last, err := v.cfg.moveElem(v.data.At(v.size - 1))
	if err != nil {
		return nil, elementError("move", v.size-1, err)
	}
	*v.data.At(v.size) = last

	// Shift [i, size-1) one slot back, highest first.
	for j := v.size - 1; j > i; j-- {
		moved, err := v.cfg.moveElem(v.data.At(j - 1))
		if err != nil {
			// The extended slot is live; account for it so every slot
			// in [0, size) remains covered by the length.
			v.size++
			return nil, elementError("move", j-1, err)
		}
		*v.data.At(j) = moved
	}

	v.cfg.destroyElem(v.data.At(i))
	*v.data.At(i) = val
	v.size++
	return v.data.At(i), nil
}

// Erase destroys the element at position i and shifts all subsequent
// elements one slot toward the front, moving when the move cannot fail
// or the type is not copyable, copying otherwise. Every displaced
// value is destroyed exactly once: the shifted-over originals when the
// shift copies, and the vacated last slot. After success, position i
// holds the element that followed the erased one. Panics if i is
// outside [0, Len).
func (v *Vector[T]) Erase(i int) error {
	v.checkIndex(i)

	var start time.Time
	if v.cfg.metrics != nil {
		start = time.Now()
	}

	err := v.erase(i)

	if m := v.cfg.metrics; m != nil {
		m.RecordErase(time.Since(start), err)
	}
	return err
}

func (v *Vector[T]) erase(i int) error {
	last := v.size - 1

	if v.cfg.relocateByMove() {
		v.cfg.destroyElem(v.data.At(i))
		for j := i; j < last; j++ {
			moved, err := v.cfg.moveElem(v.data.At(j + 1))
			if err != nil {
				return elementError("move", j+1, err)
			}
			*v.data.At(j) = moved
		}
		if i < last {
			// The shift left the last slot in the moved-from state.
			v.cfg.destroyElem(v.data.At(last))
		}
	} else {
		// Copying does not consume the source, so each overwritten
		// original must be destroyed: the erased element first, then,
		// slot by slot, the value that was already copied down in the
		// previous iteration. The copy is taken before the destination
		// is destroyed, so a failing copier leaves every slot live.
		for j := i; j < last; j++ {
			copied, err := v.cfg.copyElem(*v.data.At(j + 1))
			if err != nil {
				return elementError("copy", j+1, err)
			}
			v.cfg.destroyElem(v.data.At(j))
			*v.data.At(j) = copied
		}
		v.cfg.destroyElem(v.data.At(last))
	}

	v.size--
	return nil
}

// growCap returns the next capacity: doubling with a floor of one.
func (v *Vector[T]) growCap() int {
	if v.size == 0 {
		return 1
	}
	return v.size * 2
}

// insertGrow inserts at position i through a fresh, doubled block: the
// new element is constructed into its final slot first, then the
// prefix [0, i) and suffix [i, size) are relocated around it. On any
// failure the new block is fully unwound and released before the
// error propagates.
func (v *Vector[T]) insertGrow(i int, ctor func() (T, error)) (*T, error) {
	nb, err := rawmem.New[T](v.growCap(), v.cfg.blockOpts...)
	if err != nil {
		return nil, err
	}

	val, err := ctor()
	if err != nil {
		_ = nb.Release()
		return nil, elementError("construct", i, err)
	}
	*nb.At(i) = val

	n, err := v.relocate(v.data.Slice(0, i), nb.Slice(0, i))
	if err != nil {
		v.cfg.destroyElem(nb.At(i))
		v.destroyIn(&nb, 0, n)
		_ = nb.Release()
		return nil, err
	}

	n, err = v.relocate(v.data.Slice(i, v.size), nb.Slice(i+1, v.size+1))
	if err != nil {
		v.destroyIn(&nb, 0, i)
		v.cfg.destroyElem(nb.At(i))
		v.destroyIn(&nb, i+1, i+1+n)
		_ = nb.Release()
		return nil, err
	}

	v.noteRelocation(v.data.Cap(), nb.Cap(), v.size)
	v.destroyRange(0, v.size)
	v.data.Swap(&nb)
	v.logReleaseError(nb.Release()) // nb now holds the old block
	v.size++
	return v.data.At(i), nil
}

// swapIn relocates all live elements into nb, destroys the originals
// and installs nb as the vector's block. On failure the partially
// filled nb is unwound and released.
func (v *Vector[T]) swapIn(nb *rawmem.Block[T]) error {
	n, err := v.relocate(v.data.Slice(0, v.size), nb.Slice(0, v.size))
	if err != nil {
		v.destroyIn(nb, 0, n)
		_ = nb.Release()
		return err
	}

	v.noteRelocation(v.data.Cap(), nb.Cap(), v.size)
	v.destroyRange(0, v.size)
	v.data.Swap(nb)
	v.logReleaseError(nb.Release()) // nb now holds the old block
	return nil
}

// logReleaseError reports a failure to free a block that was already
// swapped out. The mutation has committed at that point, so the error
// cannot fail an operation that succeeded; it is logged instead.
func (v *Vector[T]) logReleaseError(err error) {
	if err != nil && v.cfg.logger != nil {
		v.cfg.logger.Warn("releasing replaced block", "error", err)
	}
}

// relocate constructs the elements of src into dst, moving or copying
// per the relocation rule. On failure it returns how many elements
// were constructed in dst before the failing one, so the caller can
// unwind them. src and dst must have equal length.
func (v *Vector[T]) relocate(src, dst []T) (int, error) {
	if v.cfg.relocateByMove() {
		for i := range src {
			moved, err := v.cfg.moveElem(&src[i])
			if err != nil {
				return i, elementError("move", i, err)
			}
			dst[i] = moved
		}
	} else {
		for i := range src {
			copied, err := v.cfg.copyElem(src[i])
			if err != nil {
				return i, elementError("copy", i, err)
			}
			dst[i] = copied
		}
	}
	return len(src), nil
}

// noteRelocation records a successful block replacement in the stats,
// metrics and log.
func (v *Vector[T]) noteRelocation(oldCap, newCap, relocated int) {
	moved, copied := 0, 0
	if v.cfg.relocateByMove() {
		moved = relocated
	} else {
		copied = relocated
	}

	v.stats.Grows++
	v.stats.MovedElems += uint64(moved)
	v.stats.CopiedElems += uint64(copied)

	if l := v.cfg.logger; l != nil {
		l.WithLen(relocated).LogGrow(oldCap, newCap, moved, copied)
	}
	if m := v.cfg.metrics; m != nil {
		m.RecordGrow(oldCap, newCap, moved, copied)
	}
}
